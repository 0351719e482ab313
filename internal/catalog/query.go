package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newNameCollator builds the collator for name ordering. Collators are
// not safe for concurrent use, so each sort gets its own.
func newNameCollator() *collate.Collator {
	return collate.New(language.English)
}

// Query computes the visible product subset for the given criteria.
//
// It is a pure function of (products, criteria): the input slice is
// never mutated and the result is always a fresh slice. An empty result
// is a normal outcome, not an error, so Query has no error return.
//
// The filters are independent predicates ANDed together:
//
//  1. category slug, then subcategory (display name or pseudo-slug)
//  2. free-text search over name, description, category name, craft type
//  3. inclusive price range
//  4. size intersection
//  5. color intersection
//
// followed by one stable sort on criteria.SortBy. Stability matters:
// products with equal sort keys keep their catalog order.
func Query(products []Product, c Criteria) []Product {
	out := make([]Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(c.Search))
	subName, subKnown := "", false
	if c.Subcategory != "" {
		subName, subKnown = SubcategoryName(c.Subcategory)
	}

	for _, p := range products {
		if c.Category != "" && p.Category.Slug != c.Category {
			continue
		}
		if subKnown && !matchSubcategory(p, c.Subcategory, subName) {
			continue
		}
		if search != "" && !matchSearch(p, search) {
			continue
		}
		if p.Price < c.MinPrice {
			continue
		}
		if c.MaxPrice > 0 && p.Price > c.MaxPrice {
			continue
		}
		if len(c.Sizes) > 0 && !intersects(p.Sizes, c.Sizes) {
			continue
		}
		if len(c.Colors) > 0 && !intersects(p.Colors, c.Colors) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, c.SortBy)
	return out
}

// matchSearch reports whether the lowercased term appears as a
// substring in any of the searchable product fields.
func matchSearch(p Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Category.Name), term) ||
		strings.Contains(strings.ToLower(p.CraftType), term)
}

// intersects reports whether have and want share at least one element.
// A nil have slice never intersects (missing sizes/colors are treated
// as empty).
func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

// sortProducts applies a stable in-place sort for the given key.
// Unknown keys fall back to name ordering, matching the storefront's
// default sort selection.
func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		col := newNameCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return col.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}

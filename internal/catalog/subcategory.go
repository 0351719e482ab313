package catalog

// subcategoryNames maps subcategory URL slugs to the display names
// stored on products. Slugs not present here are ignored by Query.
var subcategoryNames = map[string]string{
	"kurtas":      "Kurta Sets",
	"dresses":     "Dresses",
	"sarees":      "Sarees",
	"tops":        "Tops & Blouses",
	"coord-sets":  "Co-ord Sets",
	"lehengas":    "Lehengas",
	"anarkali":    "Anarkali",
	"shirts":      "Shirts",
	"jackets":     "Nehru Jackets",
	"accessories": "Accessories",
	"decor":       "Home Decor",
	"kitchen":     "Kitchen & Dining",
	"furnishing":  "Furnishing",
	"lighting":    "Lighting",
	"festive":     "Festive",
	"formal":      "Formal",
	"featured":    "Featured",
	"new":         "New Arrivals",
	"sale":        "Sale",
}

// SubcategoryName resolves a subcategory slug to its display name.
// Returns ("", false) for unknown slugs.
func SubcategoryName(slug string) (string, bool) {
	name, ok := subcategoryNames[slug]
	return name, ok
}

// matchSubcategory reports whether a product belongs to the given
// subcategory slug. A product matches on its stored display name, or
// through one of the pseudo-subcategories:
//
//	new      -> featured products
//	sale     -> products with a pre-discount price
//	festive  -> products tagged "festive"
//	formal   -> products tagged "formal"
//
// Callers must only pass slugs known to SubcategoryName.
func matchSubcategory(p Product, slug, displayName string) bool {
	if p.Subcategory == displayName {
		return true
	}
	switch slug {
	case "new":
		return p.Featured
	case "sale":
		return p.OnSale()
	case "festive", "formal":
		return p.HasTag(slug)
	}
	return false
}

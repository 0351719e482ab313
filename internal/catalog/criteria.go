package catalog

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	// SortName orders by product name, lexicographic ascending. Default.
	SortName SortKey = "name"
	// SortPriceLow orders by price ascending.
	SortPriceLow SortKey = "price-low"
	// SortPriceHigh orders by price descending.
	SortPriceHigh SortKey = "price-high"
	// SortRating orders by rating descending; a missing rating sorts as 0.
	SortRating SortKey = "rating"
)

// ValidSortKeys lists the accepted sort keys, for CLI flag validation.
var ValidSortKeys = []SortKey{SortName, SortPriceLow, SortPriceHigh, SortRating}

// IsValid reports whether k is a recognized sort key.
// The empty key is valid and means SortName.
func (k SortKey) IsValid() bool {
	if k == "" {
		return true
	}
	for _, v := range ValidSortKeys {
		if k == v {
			return true
		}
	}
	return false
}

// Criteria is the combined set of active filter, search, and sort
// selections driving catalog display. The zero value matches every
// product and sorts by name.
//
// All fields are absent-tolerant:
//   - empty Category / Subcategory / Search disable that filter
//   - MaxPrice <= 0 means "no upper bound"
//   - empty Sizes / Colors disable the intersection filters
//   - empty SortBy means SortName
type Criteria struct {
	// Category is a category slug ("women", "men", "home").
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// Subcategory is a subcategory URL slug ("kurtas", "sarees"), or one
	// of the pseudo-subcategories "new", "sale", "festive", "formal".
	// Unknown slugs disable the filter rather than matching nothing.
	Subcategory string `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`

	// Search is a free-text term matched case-insensitively against
	// name, description, category name, and craft type.
	Search string `json:"search,omitempty" yaml:"search,omitempty"`

	// MinPrice and MaxPrice bound the price inclusively.
	MinPrice int `json:"min_price,omitempty" yaml:"min_price,omitempty"`
	MaxPrice int `json:"max_price,omitempty" yaml:"max_price,omitempty"`

	// Sizes keeps products whose size list intersects this set.
	Sizes []string `json:"sizes,omitempty" yaml:"sizes,omitempty"`

	// Colors keeps products whose color list intersects this set.
	Colors []string `json:"colors,omitempty" yaml:"colors,omitempty"`

	// SortBy selects the final ordering.
	SortBy SortKey `json:"sort_by,omitempty" yaml:"sort_by,omitempty"`
}

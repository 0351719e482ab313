package catalog

// Category groups products for navigation and filtering.
// Referenced from Product by value; categories are loaded once and
// treated as immutable.
type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Slug        string `json:"slug" yaml:"slug"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty"`
	ParentID    string `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
}

// Product is a single catalog entry.
//
// Price and OriginalPrice are whole currency units (rupees, no minor
// units). OriginalPrice is zero when the product is not discounted;
// when present it must be >= Price, which is enforced at the
// data-provider boundary (see internal/schema), not here.
//
// Optional slices (Sizes, Colors, Tags, Images) may be nil. All query
// code treats a nil slice as empty.
type Product struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	Price         int      `json:"price" yaml:"price"`
	OriginalPrice int      `json:"original_price,omitempty" yaml:"original_price,omitempty"`
	Images        []string `json:"images,omitempty" yaml:"images,omitempty"`
	Category      Category `json:"category" yaml:"category"`
	Subcategory   string   `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	Sizes         []string `json:"sizes,omitempty" yaml:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty" yaml:"colors,omitempty"`
	InStock       bool     `json:"in_stock" yaml:"in_stock"`
	Featured      bool     `json:"featured,omitempty" yaml:"featured,omitempty"`
	Rating        float64  `json:"rating,omitempty" yaml:"rating,omitempty"`
	ReviewCount   int      `json:"review_count,omitempty" yaml:"review_count,omitempty"`
	Tags          []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	CraftType     string   `json:"craft_type,omitempty" yaml:"craft_type,omitempty"`
	Artisan       string   `json:"artisan,omitempty" yaml:"artisan,omitempty"`
}

// OnSale reports whether the product carries a pre-discount price.
func (p Product) OnSale() bool {
	return p.OriginalPrice > 0
}

// DiscountPercent returns the rounded percentage discount implied by
// OriginalPrice vs Price, or 0 when the product is not on sale.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= 0 {
		return 0
	}
	return int(float64(p.OriginalPrice-p.Price)/float64(p.OriginalPrice)*100 + 0.5)
}

// HasTag reports whether tag appears in the product's tag list.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

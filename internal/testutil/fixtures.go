package testutil

import "github.com/craftloom/storefront/internal/catalog"

// Category fixtures matching the sample catalog data file.
var (
	WomensWear = catalog.Category{ID: "women", Name: "Women's Wear", Slug: "women"}
	MensWear   = catalog.Category{ID: "men", Name: "Men's Wear", Slug: "men"}
	HomeLiving = catalog.Category{ID: "home", Name: "Home & Living", Slug: "home"}
)

// MakeProduct builds a minimal in-stock product for cart tests.
func MakeProduct(id, name string, price int) catalog.Product {
	return catalog.Product{
		ID:          id,
		Name:        name,
		Description: name + " description",
		Price:       price,
		Category:    WomensWear,
		InStock:     true,
	}
}

// SampleProducts returns a small fixed catalog exercising every query
// predicate: categories, subcategories, pseudo-subcategories (featured,
// sale, tags), sizes, colors, ratings, and craft types.
func SampleProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID: "w001", Name: "Elegant Embroidered Kurta Set",
			Description: "Hand-embroidered kurta with matching dupatta.",
			Price:       2499, OriginalPrice: 3499,
			Category: WomensWear, Subcategory: "Kurta Sets",
			Sizes: []string{"S", "M", "L", "XL"}, Colors: []string{"Royal Blue", "Deep Red"},
			InStock: true, Featured: true, Rating: 4.5, ReviewCount: 128,
			Tags: []string{"embroidered", "festive"}, CraftType: "Hand Embroidery",
		},
		{
			ID: "w002", Name: "Handwoven Silk Saree",
			Description: "Handwoven silk saree with traditional motifs.",
			Price:       4999, OriginalPrice: 6999,
			Category: WomensWear, Subcategory: "Sarees",
			Sizes: []string{"One Size"}, Colors: []string{"Golden Yellow", "Maroon"},
			InStock: true, Featured: true, Rating: 4.8, ReviewCount: 89,
			Tags: []string{"silk", "wedding"}, CraftType: "Handloom Weaving",
		},
		{
			ID: "w003", Name: "Block Print Cotton Dress",
			Description: "Cotton dress with block print patterns.",
			Price:       1799,
			Category:    WomensWear, Subcategory: "Dresses",
			Sizes: []string{"S", "M", "L"}, Colors: []string{"Indigo Blue"},
			InStock: true, Rating: 4.3, ReviewCount: 67,
			Tags: []string{"cotton", "casual"}, CraftType: "Block Printing",
		},
		{
			ID: "m001", Name: "Classic Nehru Jacket",
			Description: "Tailored Nehru jacket in raw silk.",
			Price:       2999, OriginalPrice: 3999,
			Category: MensWear, Subcategory: "Nehru Jackets",
			Sizes: []string{"M", "L", "XL"}, Colors: []string{"Black", "Maroon"},
			InStock: true, Rating: 4.6, ReviewCount: 54,
			Tags: []string{"formal"}, CraftType: "Tailoring",
		},
		{
			ID: "h001", Name: "Brass Diya Lamp Set",
			Description: "Hand-cast brass diya lamps for festive decor.",
			Price:       899,
			Category:    HomeLiving, Subcategory: "Home Decor",
			InStock: true, Featured: true, Rating: 4.2, ReviewCount: 31,
			Tags: []string{"festive", "brass"}, CraftType: "Metal Casting",
		},
	}
}

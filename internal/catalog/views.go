package catalog

// Derived read-only views over the product list, mirroring the
// storefront's home page sections. Each returns a fresh slice.

// ByID returns the product with the given id, or (Product{}, false).
func (c *Catalog) ByID(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ByCategory returns all products in the category with the given slug,
// in catalog order.
func (c *Catalog) ByCategory(slug string) []Product {
	var out []Product
	for _, p := range c.Products {
		if p.Category.Slug == slug {
			out = append(out, p)
		}
	}
	return out
}

// BySubcategory returns the products of a category whose subcategory
// display name matches.
func (c *Catalog) BySubcategory(categorySlug, subcategoryName string) []Product {
	var out []Product
	for _, p := range c.Products {
		if p.Category.Slug == categorySlug && p.Subcategory == subcategoryName {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the products flagged for the home page carousel.
func (c *Catalog) Featured() []Product {
	var out []Product
	for _, p := range c.Products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// OnSale returns all discounted products.
func (c *Catalog) OnSale() []Product {
	var out []Product
	for _, p := range c.Products {
		if p.OnSale() {
			out = append(out, p)
		}
	}
	return out
}

// NewArrivals returns the last n products in catalog order (the data
// file appends newest products at the end). Returns all products when
// n exceeds the catalog size.
func (c *Catalog) NewArrivals(n int) []Product {
	if n <= 0 {
		return nil
	}
	if n > len(c.Products) {
		n = len(c.Products)
	}
	out := make([]Product, n)
	copy(out, c.Products[len(c.Products)-n:])
	return out
}

package cart

import "github.com/craftloom/storefront/internal/catalog"

// LineItem is one entry in the cart: a specific product variant and
// its quantity. Size and color are empty for products without
// variants.
type LineItem struct {
	Product       catalog.Product `json:"product"`
	Quantity      int             `json:"quantity"`
	SelectedSize  string          `json:"selected_size,omitempty"`
	SelectedColor string          `json:"selected_color,omitempty"`
}

// Subtotal returns price x quantity for this line.
func (li LineItem) Subtotal() int {
	return li.Product.Price * li.Quantity
}

// sameVariant reports whether this line holds the given
// (product id, size, color) identity.
func (li LineItem) sameVariant(productID, size, color string) bool {
	return li.Product.ID == productID &&
		li.SelectedSize == size &&
		li.SelectedColor == color
}

// Cart is the cart state: line items in insertion order plus the
// derived totals. Total and ItemCount are maintained by Apply and must
// always equal the fold over Items (see package doc).
type Cart struct {
	Items     []LineItem `json:"items"`
	Total     int        `json:"total"`
	ItemCount int        `json:"item_count"`
}

// Empty returns the initial cart state.
func Empty() Cart {
	return Cart{Items: []LineItem{}}
}

// IsEmpty reports whether the cart has no line items.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Consistent reports whether the stored derived totals equal a fresh
// fold over the items. Apply preserves this by construction; checkout
// re-verifies it before handing a snapshot off.
func (c Cart) Consistent() bool {
	total, count := fold(c.Items)
	return c.Total == total && c.ItemCount == count
}

// fold computes the derived totals from scratch.
func fold(items []LineItem) (total, itemCount int) {
	for _, li := range items {
		total += li.Subtotal()
		itemCount += li.Quantity
	}
	return total, itemCount
}

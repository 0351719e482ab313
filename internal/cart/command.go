package cart

import "github.com/craftloom/storefront/internal/catalog"

// CommandType distinguishes the cart transitions.
type CommandType int

const (
	// CommandAdd merges a quantity into the matching variant line, or
	// appends a new line for an unseen variant.
	CommandAdd CommandType = iota + 1
	// CommandRemove drops every line for a product id, all variants.
	CommandRemove
	// CommandSetQuantity sets the quantity on every line for a product
	// id; a quantity <= 0 behaves exactly like CommandRemove.
	CommandSetQuantity
	// CommandClear empties the cart.
	CommandClear
)

// Command is the tagged-variant input to Apply. Exactly the fields for
// the given Type are read; the rest are ignored.
type Command struct {
	Type CommandType

	// Product is the full product record (CommandAdd only).
	Product catalog.Product

	// ProductID addresses existing lines (CommandRemove,
	// CommandSetQuantity).
	ProductID string

	// Quantity is the amount to add or the new line quantity.
	Quantity int

	// Size and Color select the variant (CommandAdd only).
	Size  string
	Color string
}

// Add builds a CommandAdd. A non-positive quantity is passed through
// unchanged: quantity coercion is the caller's responsibility, the
// state machine does not reject it.
func Add(p catalog.Product, quantity int, size, color string) Command {
	return Command{Type: CommandAdd, Product: p, Quantity: quantity, Size: size, Color: color}
}

// Remove builds a CommandRemove for all variants of a product.
func Remove(productID string) Command {
	return Command{Type: CommandRemove, ProductID: productID}
}

// SetQuantity builds a CommandSetQuantity.
func SetQuantity(productID string, quantity int) Command {
	return Command{Type: CommandSetQuantity, ProductID: productID, Quantity: quantity}
}

// Clear builds a CommandClear.
func Clear() Command {
	return Command{Type: CommandClear}
}

// Apply transitions the cart by one command and returns the new state.
//
// Apply is pure: the input cart is never mutated, and the same
// (cart, command) pair always yields the same result. Commands that
// address a product id not present in the cart are no-ops, not errors.
// After every transition the derived totals are recomputed from the
// full item list.
//
// Removal and quantity updates address lines by product id only,
// across all size/color variants, even though addition merges on the
// full variant triple. That asymmetry is the storefront's established
// behavior; see Store for the caller-facing contract.
func Apply(c Cart, cmd Command) Cart {
	var items []LineItem

	switch cmd.Type {
	case CommandAdd:
		items = applyAdd(c.Items, cmd)

	case CommandRemove:
		items = applyRemove(c.Items, cmd.ProductID)

	case CommandSetQuantity:
		if cmd.Quantity <= 0 {
			items = applyRemove(c.Items, cmd.ProductID)
			break
		}
		items = make([]LineItem, len(c.Items))
		copy(items, c.Items)
		for i := range items {
			if items[i].Product.ID == cmd.ProductID {
				items[i].Quantity = cmd.Quantity
			}
		}

	case CommandClear:
		items = []LineItem{}

	default:
		// Unknown command: state unchanged.
		return c
	}

	total, count := fold(items)
	return Cart{Items: items, Total: total, ItemCount: count}
}

// applyAdd merges into an existing variant line or appends a new one,
// preserving insertion order.
func applyAdd(items []LineItem, cmd Command) []LineItem {
	out := make([]LineItem, len(items), len(items)+1)
	copy(out, items)

	for i := range out {
		if out[i].sameVariant(cmd.Product.ID, cmd.Size, cmd.Color) {
			out[i].Quantity += cmd.Quantity
			return out
		}
	}

	return append(out, LineItem{
		Product:       cmd.Product,
		Quantity:      cmd.Quantity,
		SelectedSize:  cmd.Size,
		SelectedColor: cmd.Color,
	})
}

// applyRemove drops every line whose product id matches, keeping the
// relative order of the remainder.
func applyRemove(items []LineItem, productID string) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, li := range items {
		if li.Product.ID != productID {
			out = append(out, li)
		}
	}
	return out
}

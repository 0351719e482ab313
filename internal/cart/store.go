package cart

import (
	"log/slog"

	"github.com/craftloom/storefront/internal/catalog"
)

// Store holds one session's cart and exposes the storefront's cart
// operations. It is created empty at session start and passed by
// reference to whichever components need it; there is no ambient
// singleton.
//
// Store is not safe for concurrent use. The storefront's UI event
// model serializes all operations; see the package doc.
type Store struct {
	cart   Cart
	logger *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for cart transitions. The default
// is slog.Default.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates an empty cart store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{cart: Empty(), logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies a single command and returns the resulting state.
// All mutating operations funnel through here so every transition is
// logged uniformly.
func (s *Store) Dispatch(cmd Command) Cart {
	s.cart = Apply(s.cart, cmd)
	s.logger.Debug("cart transition",
		"command", cmd.Type,
		"lines", len(s.cart.Items),
		"total", s.cart.Total,
		"item_count", s.cart.ItemCount,
	)
	return s.cart
}

// AddToCart adds quantity units of a product variant. The same variant
// merges into its existing line; a new variant appends a line.
// Quantity is passed through as given - callers coerce to >= 1.
func (s *Store) AddToCart(p catalog.Product, quantity int, size, color string) {
	s.Dispatch(Add(p, quantity, size, color))
}

// RemoveFromCart removes every line for the product id, regardless of
// variant. Unknown ids are a silent no-op.
func (s *Store) RemoveFromCart(productID string) {
	s.Dispatch(Remove(productID))
}

// UpdateQuantity sets the quantity on every line for the product id.
// A quantity <= 0 removes the product entirely, exactly like
// RemoveFromCart. Unknown ids are a silent no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.Dispatch(SetQuantity(productID, quantity))
}

// ClearCart empties the cart. Clearing an empty cart is a no-op;
// clear is idempotent.
func (s *Store) ClearCart() {
	s.Dispatch(Clear())
}

// Cart returns a snapshot of the current state. The item slice is
// copied so callers cannot mutate store state through it.
func (s *Store) Cart() Cart {
	items := make([]LineItem, len(s.cart.Items))
	copy(items, s.cart.Items)
	return Cart{Items: items, Total: s.cart.Total, ItemCount: s.cart.ItemCount}
}

// Total returns the stored derived total.
func (s *Store) Total() int {
	return s.cart.Total
}

// ItemCount returns the stored derived item count.
func (s *Store) ItemCount() int {
	return s.cart.ItemCount
}

package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/craftloom/storefront/internal/cart"
)

// Status is an order's position in its lifecycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// validTransitions defines the allowed status moves. Delivered and
// cancelled are terminal.
var validTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransition reports whether the move s -> to is allowed.
func (s Status) CanTransition(to Status) bool {
	for _, next := range validTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Address is a shipping destination.
type Address struct {
	Name    string `json:"name" yaml:"name"`
	Street  string `json:"street" yaml:"street"`
	City    string `json:"city" yaml:"city"`
	State   string `json:"state" yaml:"state"`
	Pincode string `json:"pincode" yaml:"pincode"`
	Country string `json:"country" yaml:"country"`
}

// Order is a placed order: the frozen cart contents plus fulfillment
// metadata. Items, Total, and ItemCount are copied from the cart
// snapshot at build time and never recomputed afterwards.
type Order struct {
	ID              string          `json:"id"`
	Items           []cart.LineItem `json:"items"`
	Total           int             `json:"total"`
	ItemCount       int             `json:"item_count"`
	Status          Status          `json:"status"`
	ShippingAddress Address         `json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ErrEmptyCart is returned when building an order from an empty cart.
var ErrEmptyCart = errors.New("cannot place an order for an empty cart")

// ErrInconsistentCart is returned when a cart snapshot's derived
// totals do not match its line items. This indicates a bug upstream -
// cart.Apply maintains the invariant - so checkout refuses the
// snapshot rather than silently re-deriving.
var ErrInconsistentCart = errors.New("cart snapshot totals do not match line items")

// Builder assembles orders. IDs and Now are injected so tests can pin
// both; production wiring uses UUIDv7Generator and time.Now.
type Builder struct {
	IDs IDGenerator
	Now func() time.Time
}

// NewBuilder creates a Builder with production defaults.
func NewBuilder() *Builder {
	return &Builder{IDs: UUIDv7Generator{}, Now: time.Now}
}

// Build freezes a cart snapshot into a pending order.
//
// The snapshot is verified before acceptance: it must be non-empty and
// its derived totals must equal the fold over its items.
func (b *Builder) Build(c cart.Cart, ship Address, paymentMethod string) (Order, error) {
	if c.IsEmpty() {
		return Order{}, ErrEmptyCart
	}
	if !c.Consistent() {
		return Order{}, fmt.Errorf("%w: total=%d item_count=%d", ErrInconsistentCart, c.Total, c.ItemCount)
	}

	items := make([]cart.LineItem, len(c.Items))
	copy(items, c.Items)

	return Order{
		ID:              b.IDs.Generate(),
		Items:           items,
		Total:           c.Total,
		ItemCount:       c.ItemCount,
		Status:          StatusPending,
		ShippingAddress: ship,
		PaymentMethod:   paymentMethod,
		CreatedAt:       b.Now().UTC(),
	}, nil
}

// Advance moves the order to the next status, enforcing the lifecycle.
func (o *Order) Advance(to Status) error {
	if !to.IsValid() {
		return fmt.Errorf("unknown order status %q", to)
	}
	if !o.Status.CanTransition(to) {
		return fmt.Errorf("invalid status transition %s -> %s", o.Status, to)
	}
	o.Status = to
	return nil
}

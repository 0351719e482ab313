package orderstore

import (
	"context"
	"fmt"
	"time"

	"github.com/craftloom/storefront/internal/checkout"
)

// WriteOrder inserts an order and its line items atomically.
//
// Uses ON CONFLICT(id) DO NOTHING for idempotency: writing the same
// order twice is a silent no-op, and the returned bool reports whether
// this call inserted it. Line items are only written when the order
// row is new, so a replayed write can never duplicate items.
func (s *Store) WriteOrder(ctx context.Context, o checkout.Order) (inserted bool, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() // No-op after commit.

	res, err := tx.ExecContext(ctx, `
		INSERT INTO orders
		(id, status, total, item_count, payment_method,
		 ship_name, ship_street, ship_city, ship_state, ship_pincode, ship_country,
		 created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		o.ID,
		string(o.Status),
		o.Total,
		o.ItemCount,
		o.PaymentMethod,
		o.ShippingAddress.Name,
		o.ShippingAddress.Street,
		o.ShippingAddress.City,
		o.ShippingAddress.State,
		o.ShippingAddress.Pincode,
		o.ShippingAddress.Country,
		o.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return false, fmt.Errorf("write order %s: %w", o.ID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("write order %s: rows affected: %w", o.ID, err)
	}
	if rows == 0 {
		// Order already exists - idempotent replay, nothing more to do.
		return false, tx.Commit()
	}

	for pos, li := range o.Items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items
			(order_id, position, product_id, product_name, unit_price, quantity, size, color)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			o.ID,
			pos,
			li.Product.ID,
			li.Product.Name,
			li.Product.Price,
			li.Quantity,
			li.SelectedSize,
			li.SelectedColor,
		)
		if err != nil {
			return false, fmt.Errorf("write order %s item %d: %w", o.ID, pos, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit order %s: %w", o.ID, err)
	}
	return true, nil
}

// UpdateStatus moves a stored order along its lifecycle. The current
// status is read inside the transaction so the transition check and
// the update are atomic.
func (s *Store) UpdateStatus(ctx context.Context, orderID string, to checkout.Status) error {
	if !to.IsValid() {
		return fmt.Errorf("unknown order status %q", to)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current string
	err = tx.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = ?`, orderID).Scan(&current)
	if err != nil {
		return fmt.Errorf("read order %s status: %w", orderID, err)
	}

	from := checkout.Status(current)
	if !from.CanTransition(to) {
		return fmt.Errorf("order %s: invalid status transition %s -> %s", orderID, from, to)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, string(to), orderID); err != nil {
		return fmt.Errorf("update order %s status: %w", orderID, err)
	}

	return tx.Commit()
}

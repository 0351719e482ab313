package orderstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/craftloom/storefront/internal/cart"
	"github.com/craftloom/storefront/internal/catalog"
	"github.com/craftloom/storefront/internal/checkout"
)

// ErrNotFound is returned when an order id does not exist.
var ErrNotFound = errors.New("order not found")

// ReadOrder loads an order and its line items.
//
// Line items come back with the product fields the order log keeps
// (id, name, unit price) - order records freeze what was sold, they do
// not re-join against the live catalog.
func (s *Store) ReadOrder(ctx context.Context, orderID string) (checkout.Order, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, status, total, item_count, payment_method,
		       ship_name, ship_street, ship_city, ship_state, ship_pincode, ship_country,
		       created_at
		FROM orders WHERE id = ?
	`, orderID)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return checkout.Order{}, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
		}
		return checkout.Order{}, fmt.Errorf("read order %s: %w", orderID, err)
	}

	items, err := s.readItems(ctx, orderID)
	if err != nil {
		return checkout.Order{}, err
	}
	o.Items = items
	return o, nil
}

// ListOrders returns all orders, newest first, without line items.
// Use ReadOrder for the full record.
func (s *Store) ListOrders(ctx context.Context) ([]checkout.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, status, total, item_count, payment_method,
		       ship_name, ship_street, ship_city, ship_state, ship_pincode, ship_country,
		       created_at
		FROM orders ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []checkout.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// readItems loads a single order's line items in cart insertion order.
func (s *Store) readItems(ctx context.Context, orderID string) ([]cart.LineItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id, product_name, unit_price, quantity, size, color
		FROM order_items WHERE order_id = ? ORDER BY position
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("read order %s items: %w", orderID, err)
	}
	defer rows.Close()

	var items []cart.LineItem
	for rows.Next() {
		var li cart.LineItem
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &li.Quantity, &li.SelectedSize, &li.SelectedColor); err != nil {
			return nil, fmt.Errorf("read order %s items: %w", orderID, err)
		}
		li.Product = p
		items = append(items, li)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read order %s items: %w", orderID, err)
	}
	return items, nil
}

// rowScanner abstracts sql.Row and sql.Rows for scanOrder.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (checkout.Order, error) {
	var o checkout.Order
	var status, createdAt string
	err := row.Scan(
		&o.ID, &status, &o.Total, &o.ItemCount, &o.PaymentMethod,
		&o.ShippingAddress.Name, &o.ShippingAddress.Street, &o.ShippingAddress.City,
		&o.ShippingAddress.State, &o.ShippingAddress.Pincode, &o.ShippingAddress.Country,
		&createdAt,
	)
	if err != nil {
		return checkout.Order{}, err
	}

	o.Status = checkout.Status(status)
	o.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return checkout.Order{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	return o, nil
}

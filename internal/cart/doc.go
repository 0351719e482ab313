// Package cart implements the shopping cart state machine.
//
// The cart is a single value transitioned by tagged commands through
// one pure function, Apply. Line items are identified by the
// (product id, size, color) triple: adding the same variant twice
// merges into one line, while different variants of the same product
// stay distinct lines.
//
// Derived state (Total, ItemCount) is always recomputed as a full fold
// over the item list after every transition, never patched
// incrementally. This keeps the core invariant trivially true:
//
//	Total     == sum(item.Product.Price * item.Quantity)
//	ItemCount == sum(item.Quantity)
//
// Store wraps Apply with an explicit lifecycle for the presentation
// layer; it is a plain injected object, not an ambient singleton. The
// UI event model is single-threaded, so Store does no locking; a
// multi-client variant must add its own synchronization.
package cart

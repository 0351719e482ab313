// Package orderstore persists placed orders in SQLite.
//
// The cart itself is session-scoped and never persisted; only the
// order produced at checkout is written here. Writes are atomic: an
// order row and its line items land in one transaction or not at all.
package orderstore

// Package catalog defines the product catalog: the immutable product and
// category records supplied by the data provider, and the pure query
// engine that computes the visible product subset for a set of filter,
// search, and sort criteria.
//
// The catalog is read-only. Nothing in this package mutates a Product
// after it has been loaded; Query returns a fresh slice and never
// reorders or modifies its input.
package catalog

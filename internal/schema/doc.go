// Package schema validates catalog data files against the product CUE
// schema. Validation runs at the data-provider boundary: once a file
// passes, the cart and query layers may assume every product record is
// well formed (price > 0, original_price >= price, rating within
// bounds) and stay tolerant instead of re-checking.
package schema

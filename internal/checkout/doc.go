// Package checkout turns a consistent cart snapshot into an order.
//
// The storefront never talks to a payment processor; the payment
// method is a display label carried on the order. What checkout does
// guarantee is that the snapshot it accepts is internally consistent
// (derived totals match the line items) and that order status only
// moves along the allowed lifecycle.
package checkout

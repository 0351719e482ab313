// Package harness runs storefront scenarios: YAML-defined sequences of
// cart operations and catalog queries with expected outcomes.
//
// After every cart step the harness re-derives the cart's totals from
// its line items and fails the scenario if the stored derived state
// disagrees - the consistency invariant is checked after each
// operation, not just at the end.
//
// Each run records a trace of per-step cart state, which golden tests
// snapshot for byte-exact regression comparison.
package harness

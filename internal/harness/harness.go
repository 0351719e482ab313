package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/craftloom/storefront/internal/cart"
	"github.com/craftloom/storefront/internal/catalog"
)

// TraceEvent records the observable state after one step.
type TraceEvent struct {
	Step      int      `json:"step"`
	Op        string   `json:"op"`
	Lines     int      `json:"lines"`
	Total     int      `json:"total"`
	ItemCount int      `json:"item_count"`
	ResultIDs []string `json:"result_ids,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	Passed   bool
	Failures []string
	Trace    []TraceEvent
}

// addFailure records a failed expectation and marks the run failed.
func (r *Result) addFailure(format string, args ...any) {
	r.Passed = false
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

// Run executes a scenario against the given product catalog.
//
// Each run starts from a fresh, empty cart. Expectation failures are
// collected into the Result rather than aborting, so a scenario
// reports every mismatch in one pass. A returned error means the
// scenario itself is unrunnable (e.g. an add step references a product
// id the catalog does not contain).
//
// After every cart step the harness checks that the stored derived
// totals equal a fresh fold over the line items. A violation there is
// not an expectation failure but a broken state machine, and is
// reported with the step that triggered it.
func Run(scenario *Scenario, products []catalog.Product) (*Result, error) {
	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// Scenario runs are quiet; failures surface through the Result.
	store := cart.NewStore(cart.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	result := &Result{Passed: true}

	for i, step := range scenario.Steps {
		event := TraceEvent{Step: i + 1, Op: step.Op}

		switch step.Op {
		case OpQuery:
			matched := catalog.Query(products, *step.Criteria)
			ids := make([]string, len(matched))
			for j, p := range matched {
				ids[j] = p.ID
			}
			event.ResultIDs = ids
			checkQueryExpect(result, i, step, ids)

		case OpAdd:
			p, ok := byID[step.Product]
			if !ok {
				return nil, fmt.Errorf("steps[%d]: product %q not in catalog", i, step.Product)
			}
			store.AddToCart(p, step.Quantity, step.Size, step.Color)

		case OpRemove:
			store.RemoveFromCart(step.Product)

		case OpSetQuantity:
			store.UpdateQuantity(step.Product, step.Quantity)

		case OpClear:
			store.ClearCart()
		}

		snapshot := store.Cart()
		event.Lines = len(snapshot.Items)
		event.Total = snapshot.Total
		event.ItemCount = snapshot.ItemCount

		if step.Op != OpQuery {
			if !snapshot.Consistent() {
				result.addFailure("steps[%d] %s: derived totals inconsistent with line items (total=%d item_count=%d)",
					i, step.Op, snapshot.Total, snapshot.ItemCount)
			}
			checkCartExpect(result, i, step, snapshot)
		}

		result.Trace = append(result.Trace, event)
	}

	return result, nil
}

// checkCartExpect validates a cart step's expect clause.
func checkCartExpect(result *Result, i int, step Step, snapshot cart.Cart) {
	if step.Expect == nil {
		return
	}
	if step.Expect.Lines != nil && len(snapshot.Items) != *step.Expect.Lines {
		result.addFailure("steps[%d] %s: lines = %d, want %d", i, step.Op, len(snapshot.Items), *step.Expect.Lines)
	}
	if step.Expect.Total != nil && snapshot.Total != *step.Expect.Total {
		result.addFailure("steps[%d] %s: total = %d, want %d", i, step.Op, snapshot.Total, *step.Expect.Total)
	}
	if step.Expect.ItemCount != nil && snapshot.ItemCount != *step.Expect.ItemCount {
		result.addFailure("steps[%d] %s: item_count = %d, want %d", i, step.Op, snapshot.ItemCount, *step.Expect.ItemCount)
	}
}

// checkQueryExpect validates a query step's expect_ids clause as an
// exact ordered match.
func checkQueryExpect(result *Result, i int, step Step, ids []string) {
	if step.ExpectIDs == nil {
		return
	}
	if len(ids) != len(step.ExpectIDs) {
		result.addFailure("steps[%d] query: got %d results %v, want %d %v",
			i, len(ids), ids, len(step.ExpectIDs), step.ExpectIDs)
		return
	}
	for j := range ids {
		if ids[j] != step.ExpectIDs[j] {
			result.addFailure("steps[%d] query: result[%d] = %q, want %q", i, j, ids[j], step.ExpectIDs[j])
			return
		}
	}
}

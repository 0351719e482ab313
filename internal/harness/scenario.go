package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/craftloom/storefront/internal/catalog"
)

// Step operation names.
const (
	OpAdd         = "add"
	OpRemove      = "remove"
	OpSetQuantity = "set_quantity"
	OpClear       = "clear"
	OpQuery       = "query"
)

// Scenario defines one storefront test scenario: a sequence of cart
// operations and catalog queries executed against a fresh cart.
type Scenario struct {
	// Name uniquely identifies the scenario; it is also the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description"`

	// Steps is the operation sequence. Cart state carries across
	// steps; every scenario starts from an empty cart.
	Steps []Step `yaml:"steps"`
}

// Step is a single operation.
type Step struct {
	// Op is one of add, remove, set_quantity, clear, query.
	Op string `yaml:"op"`

	// Product is the product id (add, remove, set_quantity). For add
	// it must exist in the catalog supplied to Run.
	Product string `yaml:"product,omitempty"`

	// Quantity for add and set_quantity. May be zero or negative on
	// purpose - several scenarios exercise exactly that.
	Quantity int `yaml:"quantity,omitempty"`

	// Size and Color select the variant (add only).
	Size  string `yaml:"size,omitempty"`
	Color string `yaml:"color,omitempty"`

	// Criteria drives a query step.
	Criteria *catalog.Criteria `yaml:"criteria,omitempty"`

	// Expect validates cart state after a cart step. Subset match:
	// only the fields present are checked.
	Expect *Expect `yaml:"expect,omitempty"`

	// ExpectIDs validates the exact ordered result of a query step.
	ExpectIDs []string `yaml:"expect_ids,omitempty"`
}

// Expect specifies expected cart state after a step. Nil fields are
// not checked.
type Expect struct {
	Lines     *int `yaml:"lines,omitempty"`
	Total     *int `yaml:"total,omitempty"`
	ItemCount *int `yaml:"item_count,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields
// are rejected to catch typos like "expects:" for "expect:".
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var scenario Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks required fields and per-op constraints.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		switch step.Op {
		case OpAdd:
			if step.Product == "" {
				return fmt.Errorf("steps[%d]: product is required for add", i)
			}
		case OpRemove, OpSetQuantity:
			if step.Product == "" {
				return fmt.Errorf("steps[%d]: product is required for %s", i, step.Op)
			}
		case OpClear:
			// No fields required.
		case OpQuery:
			if step.Criteria == nil {
				return fmt.Errorf("steps[%d]: criteria is required for query", i)
			}
			if !step.Criteria.SortBy.IsValid() {
				return fmt.Errorf("steps[%d]: unknown sort key %q", i, step.Criteria.SortBy)
			}
		case "":
			return fmt.Errorf("steps[%d]: op is required", i)
		default:
			return fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
		}

		if step.Op != OpQuery && len(step.ExpectIDs) > 0 {
			return fmt.Errorf("steps[%d]: expect_ids is only valid on query steps", i)
		}
		if step.Op == OpQuery && step.Expect != nil {
			return fmt.Errorf("steps[%d]: expect is only valid on cart steps", i)
		}
	}

	return nil
}

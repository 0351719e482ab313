package schema

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.cue
var catalogSchema string

// Validation error codes (E200-E299).
const (
	// ErrCatalogParse indicates the YAML could not be parsed at all.
	ErrCatalogParse = "E200"
	// ErrCatalogSchema indicates a CUE schema constraint violation.
	ErrCatalogSchema = "E201"
	// ErrDuplicateProductID indicates two products share an id.
	ErrDuplicateProductID = "E202"
	// ErrUnknownCategory indicates a product references a category slug
	// that is not declared in the categories list.
	ErrUnknownCategory = "E203"
	// ErrDuplicateCategorySlug indicates two categories share a slug.
	ErrDuplicateCategorySlug = "E204"
)

// ValidationError represents a single catalog validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", e.Code, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// catalogDoc is the minimal decoded shape needed for the cross-record
// checks. Schema-level field validation is CUE's job.
type catalogDoc struct {
	Categories []struct {
		Slug string `yaml:"slug"`
	} `yaml:"categories"`
	Products []struct {
		ID       string `yaml:"id"`
		Category string `yaml:"category"`
	} `yaml:"products"`
}

// ValidateCatalog checks raw catalog YAML against the CUE schema and
// the cross-record rules (unique product ids, unique category slugs,
// known category references).
//
// Returns all errors found rather than failing fast, so a data file
// can be fixed in one pass. An empty slice means the file is valid.
func ValidateCatalog(data []byte) []ValidationError {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []ValidationError{{
			Field:   "catalog",
			Message: fmt.Sprintf("parse YAML: %v", err),
			Code:    ErrCatalogParse,
		}}
	}

	var errs []ValidationError
	errs = append(errs, validateAgainstSchema(doc)...)
	errs = append(errs, validateReferences(data)...)
	return errs
}

// validateAgainstSchema unifies the decoded document with the #Catalog
// definition and collects every constraint violation.
func validateAgainstSchema(doc any) []ValidationError {
	ctx := cuecontext.New()

	schemaVal := ctx.CompileString(catalogSchema)
	if err := schemaVal.Err(); err != nil {
		// Embedded schema is part of the binary; failing to compile it
		// is a programming error, not a data error.
		panic(fmt.Sprintf("compile embedded catalog schema: %v", err))
	}
	def := schemaVal.LookupPath(cue.ParsePath("#Catalog"))

	dataVal := ctx.Encode(doc)
	if err := dataVal.Err(); err != nil {
		return []ValidationError{{
			Field:   "catalog",
			Message: fmt.Sprintf("encode document: %v", err),
			Code:    ErrCatalogParse,
		}}
	}

	unified := def.Unify(dataVal)
	err := unified.Validate(cue.Concrete(true), cue.Final())
	if err == nil {
		return nil
	}

	var errs []ValidationError
	for _, e := range cueerrors.Errors(err) {
		field := ""
		if path := e.Path(); len(path) > 0 {
			field = path[0]
			for _, p := range path[1:] {
				field += "." + p
			}
		}
		errs = append(errs, ValidationError{
			Field:   field,
			Message: e.Error(),
			Code:    ErrCatalogSchema,
		})
	}
	return errs
}

// validateReferences checks id uniqueness and category slug integrity.
func validateReferences(data []byte) []ValidationError {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		// Already reported by ValidateCatalog's first decode.
		return nil
	}

	var errs []ValidationError

	slugs := make(map[string]bool, len(doc.Categories))
	for i, cat := range doc.Categories {
		if slugs[cat.Slug] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("categories[%d].slug", i),
				Message: fmt.Sprintf("duplicate category slug %q", cat.Slug),
				Code:    ErrDuplicateCategorySlug,
			})
		}
		slugs[cat.Slug] = true
	}

	ids := make(map[string]bool, len(doc.Products))
	for i, p := range doc.Products {
		if ids[p.ID] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("products[%d].id", i),
				Message: fmt.Sprintf("duplicate product id %q", p.ID),
				Code:    ErrDuplicateProductID,
			})
		}
		ids[p.ID] = true

		if !slugs[p.Category] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("products[%d].category", i),
				Message: fmt.Sprintf("unknown category slug %q", p.Category),
				Code:    ErrUnknownCategory,
			})
		}
	}

	return errs
}

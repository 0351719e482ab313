package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `
categories:
  - id: women
    name: Women's Wear
    slug: women
  - id: home
    name: Home & Living
    slug: home
products:
  - id: w001
    name: Embroidered Kurta Set
    description: Hand-embroidered kurta.
    price: 2499
    original_price: 3499
    category: women
    subcategory: Kurta Sets
    sizes: [S, M, L]
    colors: [Royal Blue]
    in_stock: true
    featured: true
    rating: 4.5
    review_count: 128
    tags: [festive]
    craft_type: Hand Embroidery
  - id: h001
    name: Brass Diya Lamp Set
    description: Hand-cast brass diya lamps.
    price: 899
    category: home
    in_stock: false
`

func codes(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestValidateCatalog_Valid(t *testing.T) {
	errs := ValidateCatalog([]byte(validCatalog))
	assert.Empty(t, errs)
}

func TestValidateCatalog_MalformedYAML(t *testing.T) {
	errs := ValidateCatalog([]byte("products: [::"))

	require.Len(t, errs, 1)
	assert.Equal(t, ErrCatalogParse, errs[0].Code)
}

func TestValidateCatalog_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "price must be positive",
			yaml: `
categories:
  - {id: women, name: Women's Wear, slug: women}
products:
  - {id: p1, name: Kurta, description: A kurta., price: 0, category: women, in_stock: true}
`,
		},
		{
			name: "original price below selling price",
			yaml: `
categories:
  - {id: women, name: Women's Wear, slug: women}
products:
  - {id: p1, name: Kurta, description: A kurta., price: 2499, original_price: 1999, category: women, in_stock: true}
`,
		},
		{
			name: "rating above five",
			yaml: `
categories:
  - {id: women, name: Women's Wear, slug: women}
products:
  - {id: p1, name: Kurta, description: A kurta., price: 100, rating: 5.5, category: women, in_stock: true}
`,
		},
		{
			name: "missing required field",
			yaml: `
categories:
  - {id: women, name: Women's Wear, slug: women}
products:
  - {id: p1, name: Kurta, price: 100, category: women, in_stock: true}
`,
		},
		{
			name: "empty product id",
			yaml: `
categories:
  - {id: women, name: Women's Wear, slug: women}
products:
  - {id: "", name: Kurta, description: A kurta., price: 100, category: women, in_stock: true}
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCatalog([]byte(tt.yaml))
			require.NotEmpty(t, errs)
			assert.Contains(t, codes(errs), ErrCatalogSchema)
		})
	}
}

func TestValidateCatalog_DuplicateProductID(t *testing.T) {
	data := `
categories:
  - {id: women, name: Women's Wear, slug: women}
products:
  - {id: p1, name: Kurta, description: A kurta., price: 100, category: women, in_stock: true}
  - {id: p1, name: Saree, description: A saree., price: 200, category: women, in_stock: true}
`
	errs := ValidateCatalog([]byte(data))

	require.NotEmpty(t, errs)
	assert.Contains(t, codes(errs), ErrDuplicateProductID)
	for _, e := range errs {
		if e.Code == ErrDuplicateProductID {
			assert.Equal(t, "products[1].id", e.Field)
		}
	}
}

func TestValidateCatalog_DuplicateCategorySlug(t *testing.T) {
	data := `
categories:
  - {id: women, name: Women's Wear, slug: women}
  - {id: women2, name: Ladies, slug: women}
products: []
`
	errs := ValidateCatalog([]byte(data))

	require.NotEmpty(t, errs)
	assert.Contains(t, codes(errs), ErrDuplicateCategorySlug)
}

func TestValidateCatalog_UnknownCategoryReference(t *testing.T) {
	data := `
categories:
  - {id: women, name: Women's Wear, slug: women}
products:
  - {id: p1, name: Kurta, description: A kurta., price: 100, category: menswear, in_stock: true}
`
	errs := ValidateCatalog([]byte(data))

	require.NotEmpty(t, errs)
	assert.Contains(t, codes(errs), ErrUnknownCategory)
}

// A file with several independent problems reports all of them in one
// pass rather than failing on the first.
func TestValidateCatalog_CollectsMultipleErrors(t *testing.T) {
	data := `
categories:
  - {id: women, name: Women's Wear, slug: women}
products:
  - {id: p1, name: Kurta, description: A kurta., price: 100, category: women, in_stock: true}
  - {id: p1, name: Saree, description: A saree., price: 200, category: nope, in_stock: true}
`
	errs := ValidateCatalog([]byte(data))

	assert.Contains(t, codes(errs), ErrDuplicateProductID)
	assert.Contains(t, codes(errs), ErrUnknownCategory)
}

func TestValidationError_Error(t *testing.T) {
	e := ValidationError{Field: "products[0].price", Message: "must be positive", Code: ErrCatalogSchema}
	assert.Equal(t, "[E201] products[0].price: must be positive", e.Error())

	e.Line = 12
	assert.Equal(t, "[E201] line 12: products[0].price: must be positive", e.Error())
}

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftloom/storefront/internal/catalog"
	"github.com/craftloom/storefront/internal/testutil"
)

func ids(products []catalog.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestQuery_ZeroCriteriaMatchesEverything(t *testing.T) {
	products := testutil.SampleProducts()

	got := catalog.Query(products, catalog.Criteria{})

	assert.Len(t, got, len(products))
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	products := testutil.SampleProducts()
	originalIDs := ids(products)

	_ = catalog.Query(products, catalog.Criteria{SortBy: catalog.SortPriceHigh})

	assert.Equal(t, originalIDs, ids(products), "input slice order must be untouched")
}

func TestQuery_CategoryFilter(t *testing.T) {
	got := catalog.Query(testutil.SampleProducts(), catalog.Criteria{Category: "men"})

	assert.Equal(t, []string{"m001"}, ids(got))
}

func TestQuery_SubcategoryDisplayName(t *testing.T) {
	got := catalog.Query(testutil.SampleProducts(), catalog.Criteria{
		Category:    "women",
		Subcategory: "sarees",
	})

	assert.Equal(t, []string{"w002"}, ids(got))
}

func TestQuery_PseudoSubcategories(t *testing.T) {
	products := testutil.SampleProducts()

	tests := []struct {
		slug string
		want []string
	}{
		// "new" selects featured products; name sort applies.
		{"new", []string{"h001", "w001", "w002"}},
		// "sale" selects discounted products.
		{"sale", []string{"m001", "w001", "w002"}},
		// "festive"/"formal" select by tag.
		{"festive", []string{"h001", "w001"}},
		{"formal", []string{"m001"}},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			got := catalog.Query(products, catalog.Criteria{Subcategory: tt.slug})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestQuery_UnknownSubcategorySlugDisablesFilter(t *testing.T) {
	products := testutil.SampleProducts()

	got := catalog.Query(products, catalog.Criteria{Subcategory: "no-such-slug"})

	assert.Len(t, got, len(products), "unknown slug must not filter anything out")
}

func TestQuery_SearchIsCaseInsensitive(t *testing.T) {
	products := testutil.SampleProducts()

	for _, term := range []string{"saree", "SAREE", "  Saree  "} {
		got := catalog.Query(products, catalog.Criteria{Search: term})
		assert.Equal(t, []string{"w002"}, ids(got), "term %q", term)
	}
}

func TestQuery_SearchSpansFields(t *testing.T) {
	products := testutil.SampleProducts()

	tests := []struct {
		term string
		want []string
	}{
		{"nehru", []string{"m001"}},           // name
		{"dupatta", []string{"w001"}},         // description
		{"home & living", []string{"h001"}},   // category name
		{"block printing", []string{"w003"}},  // craft type
		{"zzz-nothing", []string{}},           // empty result, not an error
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := catalog.Query(products, catalog.Criteria{Search: tt.term})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestQuery_PriceRangeInclusive(t *testing.T) {
	products := testutil.SampleProducts()

	// Bounds sit exactly on product prices; both ends are inclusive.
	got := catalog.Query(products, catalog.Criteria{
		MinPrice: 899,
		MaxPrice: 2499,
		SortBy:   catalog.SortPriceLow,
	})

	assert.Equal(t, []string{"h001", "w003", "w001"}, ids(got))
}

func TestQuery_MaxPriceZeroMeansUnbounded(t *testing.T) {
	products := testutil.SampleProducts()

	got := catalog.Query(products, catalog.Criteria{MinPrice: 3000, MaxPrice: 0})

	assert.Equal(t, []string{"w002"}, ids(got))
}

func TestQuery_SizeAndColorIntersection(t *testing.T) {
	products := testutil.SampleProducts()

	got := catalog.Query(products, catalog.Criteria{
		Sizes:  []string{"M"},
		Colors: []string{"Maroon"},
	})

	// w002 has Maroon but not size M; m001 has both.
	assert.Equal(t, []string{"m001"}, ids(got))
}

func TestQuery_ProductWithoutSizesNeverMatchesSizeFilter(t *testing.T) {
	products := testutil.SampleProducts()

	got := catalog.Query(products, catalog.Criteria{Sizes: []string{"One Size"}})

	assert.Equal(t, []string{"w002"}, ids(got), "h001 has no sizes and must be excluded")
}

func TestQuery_FiltersAreConjunctive(t *testing.T) {
	products := testutil.SampleProducts()

	// Each predicate alone matches more; together they pin one product.
	got := catalog.Query(products, catalog.Criteria{
		Category:    "women",
		Subcategory: "sale",
		Search:      "kurta",
		MinPrice:    1000,
		MaxPrice:    3000,
		Sizes:       []string{"M"},
		Colors:      []string{"Deep Red"},
	})

	assert.Equal(t, []string{"w001"}, ids(got))
}

func TestQuery_SortOrders(t *testing.T) {
	products := testutil.SampleProducts()

	tests := []struct {
		name string
		key  catalog.SortKey
		want []string
	}{
		{"name default", "", []string{"w003", "h001", "m001", "w001", "w002"}},
		{"name explicit", catalog.SortName, []string{"w003", "h001", "m001", "w001", "w002"}},
		{"price low", catalog.SortPriceLow, []string{"h001", "w003", "w001", "m001", "w002"}},
		{"price high", catalog.SortPriceHigh, []string{"w002", "m001", "w001", "w003", "h001"}},
		{"rating", catalog.SortRating, []string{"w002", "m001", "w001", "w003", "h001"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Query(products, catalog.Criteria{SortBy: tt.key})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestQuery_SortIsStableOnTies(t *testing.T) {
	women := testutil.WomensWear
	products := []catalog.Product{
		{ID: "p1", Name: "Alpha", Price: 100, Rating: 4.0, Category: women, InStock: true},
		{ID: "p2", Name: "Beta", Price: 100, Rating: 4.0, Category: women, InStock: true},
		{ID: "p3", Name: "Gamma", Price: 100, Rating: 4.0, Category: women, InStock: true},
	}

	for _, key := range []catalog.SortKey{catalog.SortPriceLow, catalog.SortPriceHigh, catalog.SortRating} {
		got := catalog.Query(products, catalog.Criteria{SortBy: key})
		assert.Equal(t, []string{"p1", "p2", "p3"}, ids(got), "equal keys must keep catalog order under %s", key)
	}
}

// TestQuery_StorefrontScenarios pins the two-product flows the
// storefront's product page is built around.
func TestQuery_StorefrontScenarios(t *testing.T) {
	a := testutil.MakeProduct("a", "Kurta", 100)
	b := testutil.MakeProduct("b", "Saree", 50)
	products := []catalog.Product{a, b}

	got := catalog.Query(products, catalog.Criteria{SortBy: catalog.SortPriceLow})
	require.Equal(t, []string{"b", "a"}, ids(got))

	got = catalog.Query(products, catalog.Criteria{Search: "saree"})
	require.Equal(t, []string{"b"}, ids(got))
}

func TestSortKey_IsValid(t *testing.T) {
	assert.True(t, catalog.SortKey("").IsValid())
	assert.True(t, catalog.SortPriceLow.IsValid())
	assert.True(t, catalog.SortRating.IsValid())
	assert.False(t, catalog.SortKey("price").IsValid())
	assert.False(t, catalog.SortKey("Name").IsValid())
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_OnSale(t *testing.T) {
	assert.True(t, Product{Price: 2499, OriginalPrice: 3499}.OnSale())
	assert.False(t, Product{Price: 2499}.OnSale())
}

func TestProduct_DiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		price    int
		original int
		want     int
	}{
		{"no discount", 2499, 0, 0},
		{"rounds up", 2499, 3499, 29},  // 28.58%
		{"rounds down", 899, 1199, 25}, // 25.02%
		{"half price", 500, 1000, 50},
		{"equal prices", 1000, 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, OriginalPrice: tt.original}
			assert.Equal(t, tt.want, p.DiscountPercent())
		})
	}
}

func TestProduct_HasTag(t *testing.T) {
	p := Product{Tags: []string{"festive", "silk"}}

	assert.True(t, p.HasTag("festive"))
	assert.False(t, p.HasTag("formal"))
	assert.False(t, Product{}.HasTag("festive"))
}

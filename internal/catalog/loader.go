package catalog

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/craftloom/storefront/internal/schema"
)

// Catalog is the loaded product data: the static category and product
// lists the query engine and storefront pages read from. It is built
// once by Load and never mutated afterwards.
type Catalog struct {
	Categories []Category
	Products   []Product
}

// catalogFile is the on-disk shape of a catalog YAML file. Products
// reference their category by slug; Load resolves the reference.
type catalogFile struct {
	Categories []Category    `yaml:"categories"`
	Products   []productFile `yaml:"products"`
}

type productFile struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Price         int      `yaml:"price"`
	OriginalPrice int      `yaml:"original_price,omitempty"`
	Images        []string `yaml:"images,omitempty"`
	Category      string   `yaml:"category"`
	Subcategory   string   `yaml:"subcategory,omitempty"`
	Sizes         []string `yaml:"sizes,omitempty"`
	Colors        []string `yaml:"colors,omitempty"`
	InStock       bool     `yaml:"in_stock"`
	Featured      bool     `yaml:"featured,omitempty"`
	Rating        float64  `yaml:"rating,omitempty"`
	ReviewCount   int      `yaml:"review_count,omitempty"`
	Tags          []string `yaml:"tags,omitempty"`
	CraftType     string   `yaml:"craft_type,omitempty"`
	Artisan       string   `yaml:"artisan,omitempty"`
}

// Load reads, validates, and resolves a catalog YAML file.
//
// Validation happens here, at the data-provider boundary: the file is
// checked against the CUE schema (required fields, price > 0,
// original_price >= price, rating bounds) and for unique product ids
// and known category slugs. Downstream code may therefore assume every
// Product it sees is well formed.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse validates and resolves raw catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	if errs := schema.ValidateCatalog(data); len(errs) > 0 {
		return nil, fmt.Errorf("catalog validation failed: %w", errs[0])
	}

	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields (catches typos)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}

	bySlug := make(map[string]Category, len(file.Categories))
	for _, cat := range file.Categories {
		if _, dup := bySlug[cat.Slug]; dup {
			return nil, fmt.Errorf("duplicate category slug %q", cat.Slug)
		}
		bySlug[cat.Slug] = cat
	}

	seen := make(map[string]bool, len(file.Products))
	products := make([]Product, 0, len(file.Products))
	for i, pf := range file.Products {
		if seen[pf.ID] {
			return nil, fmt.Errorf("products[%d]: duplicate product id %q", i, pf.ID)
		}
		seen[pf.ID] = true

		cat, ok := bySlug[pf.Category]
		if !ok {
			return nil, fmt.Errorf("products[%d]: unknown category slug %q", i, pf.Category)
		}

		products = append(products, Product{
			ID:            pf.ID,
			Name:          pf.Name,
			Description:   pf.Description,
			Price:         pf.Price,
			OriginalPrice: pf.OriginalPrice,
			Images:        pf.Images,
			Category:      cat,
			Subcategory:   pf.Subcategory,
			Sizes:         pf.Sizes,
			Colors:        pf.Colors,
			InStock:       pf.InStock,
			Featured:      pf.Featured,
			Rating:        pf.Rating,
			ReviewCount:   pf.ReviewCount,
			Tags:          pf.Tags,
			CraftType:     pf.CraftType,
			Artisan:       pf.Artisan,
		})
	}

	slog.Debug("catalog loaded",
		"categories", len(file.Categories),
		"products", len(products),
	)

	return &Catalog{Categories: file.Categories, Products: products}, nil
}

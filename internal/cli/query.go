package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftloom/storefront/internal/catalog"
	"github.com/craftloom/storefront/internal/config"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Catalog     string
	Category    string
	Subcategory string
	Search      string
	MinPrice    int
	MaxPrice    int
	Sizes       []string
	Colors      []string
	Sort        string
}

// QueryRow is one product in the query result payload.
type QueryRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       int     `json:"price"`
	Discount    int     `json:"discount_percent,omitempty"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	InStock     bool    `json:"in_stock"`
}

// QueryResult is the query command's payload.
type QueryResult struct {
	Count    int        `json:"count"`
	Products []QueryRow `json:"products"`
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts, MinPrice: -1, MaxPrice: -1}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the product catalog",
		Long: `Filter, search, and sort the product catalog.

All filters combine with AND; an empty result is normal output, not an
error.

Examples:
  storefront query --category women --sort price-low
  storefront query --search saree
  storefront query --category women --subcategory sale --size M --size L
  storefront query --min-price 1000 --max-price 3000 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "catalog file (default from config)")
	cmd.Flags().StringVar(&opts.Category, "category", "", "category slug")
	cmd.Flags().StringVar(&opts.Subcategory, "subcategory", "", "subcategory slug (kurtas, sarees, new, sale, ...)")
	cmd.Flags().StringVar(&opts.Search, "search", "", "free-text search term")
	cmd.Flags().IntVar(&opts.MinPrice, "min-price", -1, "minimum price (inclusive)")
	cmd.Flags().IntVar(&opts.MaxPrice, "max-price", -1, "maximum price (inclusive)")
	cmd.Flags().StringArrayVar(&opts.Sizes, "size", nil, "size filter (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Colors, "color", nil, "color filter (repeatable)")
	cmd.Flags().StringVar(&opts.Sort, "sort", "name", "sort key (name|price-low|price-high|rating)")

	return cmd
}

func runQuery(opts *QueryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return WrapExitError(ExitCommandError, "load config", err)
	}

	path := opts.Catalog
	if path == "" {
		path = cfg.Catalog.Path
	}

	cat, err := catalog.Load(path)
	if err != nil {
		formatter.Error("E001", err.Error(), nil)
		return WrapExitError(ExitCommandError, "load catalog", err)
	}

	sortKey := catalog.SortKey(opts.Sort)
	if !sortKey.IsValid() {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("unknown sort key %q: must be one of %v", opts.Sort, catalog.ValidSortKeys))
	}

	criteria := catalog.Criteria{
		Category:    opts.Category,
		Subcategory: opts.Subcategory,
		Search:      opts.Search,
		MinPrice:    cfg.Catalog.MinPrice,
		MaxPrice:    cfg.Catalog.MaxPrice,
		Sizes:       opts.Sizes,
		Colors:      opts.Colors,
		SortBy:      sortKey,
	}
	if opts.MinPrice >= 0 {
		criteria.MinPrice = opts.MinPrice
	}
	if opts.MaxPrice >= 0 {
		criteria.MaxPrice = opts.MaxPrice
	}

	formatter.VerboseLog("querying %d products", len(cat.Products))

	matched := catalog.Query(cat.Products, criteria)

	result := QueryResult{Count: len(matched), Products: make([]QueryRow, len(matched))}
	for i, p := range matched {
		result.Products[i] = QueryRow{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Discount:    p.DiscountPercent(),
			Category:    p.Category.Name,
			Subcategory: p.Subcategory,
			Rating:      p.Rating,
			InStock:     p.InStock,
		}
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	if result.Count == 0 {
		fmt.Fprintln(formatter.Writer, "no products found")
		return nil
	}
	for _, row := range result.Products {
		line := fmt.Sprintf("%-6s %-40s %6d", row.ID, row.Name, row.Price)
		if row.Discount > 0 {
			line += fmt.Sprintf("  (%d%% off)", row.Discount)
		}
		fmt.Fprintln(formatter.Writer, line)
	}
	fmt.Fprintf(formatter.Writer, "%d product(s)\n", result.Count)
	return nil
}

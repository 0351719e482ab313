package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftloom/storefront/internal/cart"
	"github.com/craftloom/storefront/internal/catalog"
	"github.com/craftloom/storefront/internal/checkout"
	"github.com/craftloom/storefront/internal/config"
	"github.com/craftloom/storefront/internal/orderstore"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	*RootOptions
	Catalog string
	DBPath  string
}

// DemoResult is the demo command's payload.
type DemoResult struct {
	OrderID   string `json:"order_id"`
	Total     int    `json:"total"`
	ItemCount int    `json:"item_count"`
	Status    string `json:"status"`
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted shopping session",
		Long: `Run a scripted session end to end: load the catalog, browse a
category, fill a cart (including a merged variant add and a quantity
update), place the order, and persist it to the order database.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "catalog file (default from config)")
	cmd.Flags().StringVar(&opts.DBPath, "db", "", "order database path (default from config)")

	return cmd
}

func runDemo(opts *DemoOptions, cmd *cobra.Command) error {
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

	catalogPath := opts.Catalog
	if catalogPath == "" {
		catalogPath = cfg.Catalog.Path
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = cfg.Orders.DBPath
	}

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "load catalog", err)
	}

	// Browse: featured products in the women's category, cheapest first.
	featured := catalog.Query(cat.Products, catalog.Criteria{
		Category:    "women",
		Subcategory: "new",
		SortBy:      catalog.SortPriceLow,
	})
	if len(featured) < 2 {
		return NewExitError(ExitFailure, "demo needs at least two featured women's products in the catalog")
	}
	formatter.VerboseLog("browsing: %d featured products", len(featured))

	// Fill the cart: two of the first pick in different sizes (distinct
	// lines), the same size twice (merged line), then trim one back.
	store := cart.NewStore()
	first, second := featured[0], featured[1]

	size := func(p catalog.Product) string {
		if len(p.Sizes) > 0 {
			return p.Sizes[0]
		}
		return ""
	}
	color := func(p catalog.Product) string {
		if len(p.Colors) > 0 {
			return p.Colors[0]
		}
		return ""
	}

	store.AddToCart(first, 1, size(first), color(first))
	store.AddToCart(first, 1, size(first), color(first)) // merges
	store.AddToCart(second, 2, size(second), color(second))
	store.UpdateQuantity(second.ID, 1)

	snapshot := store.Cart()
	formatter.VerboseLog("cart: %d line(s), total %d, %d item(s)",
		len(snapshot.Items), snapshot.Total, snapshot.ItemCount)

	// Checkout.
	builder := checkout.NewBuilder()
	order, err := builder.Build(snapshot, checkout.Address{
		Name:    "Demo Customer",
		Street:  "42 Loom Lane",
		City:    "Jaipur",
		State:   "Rajasthan",
		Pincode: "302001",
		Country: "India",
	}, "cash-on-delivery")
	if err != nil {
		return WrapExitError(ExitFailure, "build order", err)
	}

	db, err := orderstore.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "open order database", err)
	}
	defer db.Close()

	if _, err := db.WriteOrder(cmd.Context(), order); err != nil {
		return WrapExitError(ExitCommandError, "write order", err)
	}

	// Session over: the cart does not outlive checkout.
	store.ClearCart()

	result := DemoResult{
		OrderID:   order.ID,
		Total:     order.Total,
		ItemCount: order.ItemCount,
		Status:    string(order.Status),
	}
	if opts.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "placed order %s: %d item(s), total %d, status %s\n",
		result.OrderID, result.ItemCount, result.Total, result.Status)
	return nil
}

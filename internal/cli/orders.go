package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/craftloom/storefront/internal/config"
	"github.com/craftloom/storefront/internal/orderstore"
)

// OrdersOptions holds flags for the orders command.
type OrdersOptions struct {
	*RootOptions
	DBPath string
}

// OrderSummary is one order in the listing payload.
type OrderSummary struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Total     int    `json:"total"`
	ItemCount int    `json:"item_count"`
	CreatedAt string `json:"created_at"`
}

// OrdersResult is the orders command's payload.
type OrdersResult struct {
	Count  int            `json:"count"`
	Orders []OrderSummary `json:"orders"`
}

// NewOrdersCommand creates the orders command.
func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrdersOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List placed orders",
		Long: `List orders from the order database, newest first.

Exit codes:
  0 - Success (an empty order log is success)
  2 - Command error (database not found or unreadable)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrders(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "order database path (default from config)")

	return cmd
}

func runOrders(opts *OrdersOptions, cmd *cobra.Command) error {
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

	path := opts.DBPath
	if path == "" {
		path = cfg.Orders.DBPath
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		formatter.Error("E001", fmt.Sprintf("order database not found: %s", path), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("order database not found: %s", path))
	}

	store, err := orderstore.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "open order database", err)
	}
	defer store.Close()

	orders, err := store.ListOrders(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "list orders", err)
	}

	result := OrdersResult{Count: len(orders), Orders: make([]OrderSummary, len(orders))}
	for i, o := range orders {
		result.Orders[i] = OrderSummary{
			ID:        o.ID,
			Status:    string(o.Status),
			Total:     o.Total,
			ItemCount: o.ItemCount,
			CreatedAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	if result.Count == 0 {
		fmt.Fprintln(formatter.Writer, "no orders")
		return nil
	}
	for _, o := range result.Orders {
		fmt.Fprintf(formatter.Writer, "%-36s  %-10s  %6d  %3d item(s)  %s\n",
			o.ID, o.Status, o.Total, o.ItemCount, o.CreatedAt)
	}
	fmt.Fprintf(formatter.Writer, "%d order(s)\n", result.Count)
	return nil
}

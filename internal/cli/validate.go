package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/craftloom/storefront/internal/schema"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                     `json:"valid"`
	Errors []schema.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <catalog-file>",
		Short: "Validate a catalog data file",
		Long: `Validate a catalog YAML file against the product schema.

Checks required fields, price and rating bounds, the
original_price >= price constraint, unique product ids, and category
slug references. Reports every violation found, not just the first.

Exit codes:
  0 - Catalog is valid
  1 - Validation errors found
  2 - Command error (file not found, unreadable)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		formatter.Error("E001", fmt.Sprintf("cannot read catalog file: %v", err), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("cannot read catalog file: %s", path))
	}

	formatter.VerboseLog("validating %s", path)

	errs := schema.ValidateCatalog(data)
	if len(errs) > 0 {
		if opts.Format == "json" {
			formatter.Error("E100", "catalog validation failed", ValidationResult{Valid: false, Errors: errs})
		} else {
			for _, e := range errs {
				fmt.Fprintln(formatter.Writer, e.Error())
			}
			fmt.Fprintf(formatter.Writer, "%d validation error(s)\n", len(errs))
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%d validation error(s)", len(errs)))
	}

	if opts.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}
	fmt.Fprintf(formatter.Writer, "%s: valid\n", path)
	return nil
}

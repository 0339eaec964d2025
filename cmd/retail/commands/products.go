package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"github.com/fivetwenty-io/retail-samples/pkg/samples"
	"github.com/spf13/cobra"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage catalog products",
		Long:    "Create, get and delete products in the default branch of the catalog",
	}

	cmd.AddCommand(newProductsCreateCommand())
	cmd.AddCommand(newProductsGetCommand())
	cmd.AddCommand(newProductsDeleteCommand())
	cmd.AddCommand(newProductsDeleteAllCommand())

	return cmd
}

func newProductsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create PRODUCT_ID",
		Short: "Create the sample product",
		Long:  "Create the sample \"Nest Mini\" product with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				_, err := s.runner.CreateProduct(ctx, args[0])

				return err
			})
		},
	}
}

func newProductsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PRODUCT_ID_OR_NAME",
		Short: "Get a product",
		Long:  "Display a product by id or full resource name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				_, err := s.runner.GetProduct(ctx, s.runner.Names().ResolveProductName(args[0]))

				return err
			})
		},
	}
}

func newProductsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PRODUCT_ID_OR_NAME",
		Short: "Delete a product",
		Long:  "Delete a product by id or full resource name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirm(cmd, force, fmt.Sprintf("Really delete product '%s'?", args[0])); err != nil {
				return ignoreCancelled(err)
			}

			return withSession(cmd, func(ctx context.Context, s *session) error {
				return s.runner.DeleteProduct(ctx, s.runner.Names().ResolveProductName(args[0]))
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func newProductsDeleteAllCommand() *cobra.Command {
	var (
		force       bool
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every product in the catalog",
		Long:  "Delete every product in the default branch. Products that disappear while deleting are skipped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirm(cmd, force, "Really delete all products?"); err != nil {
				return ignoreCancelled(err)
			}

			return withSession(cmd, func(ctx context.Context, s *session) error {
				runner := s.runner
				if cmd.Flags().Changed("concurrency") {
					runner = s.runnerWith(cmd, samples.WithConcurrency(concurrency))
				}

				report, err := runner.DeleteAllProducts(ctx)
				if report != nil {
					if printErr := s.printer.Value("Delete report", report); printErr != nil && err == nil {
						err = printErr
					}
				}

				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")
	cmd.Flags().IntVar(&concurrency, "concurrency", constants.DefaultConcurrency, "number of parallel deletions")

	return cmd
}

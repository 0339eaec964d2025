package commands

import (
	"context"
	"time"

	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"github.com/fivetwenty-io/retail-samples/pkg/samples"
	"github.com/spf13/cobra"
)

// NewInventoryCommand creates the inventory command group.
func NewInventoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Update product inventory",
		Long:  "Update price, availability and fulfillment information of products",
	}

	cmd.AddCommand(newInventorySetCommand())
	cmd.AddCommand(newInventoryTutorialCommand())

	return cmd
}

func newInventorySetCommand() *cobra.Command {
	var (
		await bool
		wait  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "set PRODUCT_ID_OR_NAME",
		Short: "Set inventory of a product",
		Long: `Submit an inventory update for a product and wait a fixed time for it to apply.

The update is asynchronous. Use --await to wait for the operation instead of
sleeping.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				runner := s.runner
				if cmd.Flags().Changed("wait") {
					runner = s.runnerWith(cmd, samples.WithInventoryWait(wait))
				}

				name := runner.Names().ResolveProductName(args[0])
				if err := runner.SetInventory(ctx, name, await); err != nil {
					return err
				}

				_, err := runner.GetProduct(ctx, name)

				return err
			})
		},
	}

	cmd.Flags().BoolVar(&await, "await", false, "wait for the long-running operation instead of sleeping")
	cmd.Flags().DurationVar(&wait, "wait", constants.DefaultInventoryWait, "time to sleep after submitting the update")

	return cmd
}

func newInventoryTutorialCommand() *cobra.Command {
	var await bool

	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Run the set-inventory tutorial",
		Long:  "Create a test product, set its inventory, print it and delete it again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				return s.runner.RunSetInventory(ctx, await)
			})
		},
	}

	cmd.Flags().BoolVar(&await, "await", false, "wait for the long-running operation instead of sleeping")

	return cmd
}

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewCleanupCommand creates the cleanup command.
func NewCleanupCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove all test resources",
		Long:  "Delete every product in the catalog and then the import bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			if err := settings.RequireBucket(); err != nil {
				return err
			}

			prompt := fmt.Sprintf("Really delete all products and bucket '%s'?", settings.BucketName)
			if err := confirm(cmd, force, prompt); err != nil {
				return ignoreCancelled(err)
			}

			return withSession(cmd, func(ctx context.Context, s *session) error {
				report, err := s.runner.RemoveTestResources(ctx, s.settings.BucketName)
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

	return cmd
}

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewBucketsCommand creates the buckets command group.
func NewBucketsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "buckets",
		Aliases: []string{"bucket"},
		Short:   "Manage import buckets",
		Long:    "Clean up the Cloud Storage buckets used to import catalog data",
	}

	cmd.AddCommand(newBucketsDeleteCommand())

	return cmd
}

func newBucketsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete [BUCKET_NAME]",
		Short: "Delete a bucket and its objects",
		Long: `Delete a bucket. A bucket that still holds objects is emptied and deleted
again. A bucket that does not exist is reported as already deleted.

The bucket defaults to BUCKET_NAME or --bucket.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			bucket := settings.BucketName
			if len(args) == 1 {
				bucket = args[0]
			} else if err := settings.RequireBucket(); err != nil {
				return err
			}

			if err := confirm(cmd, force, fmt.Sprintf("Really delete bucket '%s' and all of its objects?", bucket)); err != nil {
				return ignoreCancelled(err)
			}

			return withSession(cmd, func(ctx context.Context, s *session) error {
				return s.runner.DeleteBucket(ctx, bucket)
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

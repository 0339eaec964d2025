package samples

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cloud.google.com/go/retail/apiv2/retailpb"
	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
)

// DeleteAllProducts deletes every product in the default branch. Deletions
// failing with PermissionDenied are counted as skipped: the service answers
// that way for products removed concurrently. Other failures are collected
// in the report and returned as ErrDeletionFailed.
func (r *Runner) DeleteAllProducts(ctx context.Context) (*retail.DeleteReport, error) {
	r.printer.Messagef("Deleting products in process, please wait...")

	names, err := r.listProductNames(ctx)
	if err != nil {
		return nil, err
	}

	report := &retail.DeleteReport{Listed: len(names)}

	var (
		mu     sync.Mutex
		errs   []error
		failed []string
	)

	operations := make([]retail.BatchOperation, 0, len(names))
	for _, name := range names {
		operations = append(operations, retail.BatchOperation{
			ID: name,
			Run: func(ctx context.Context) error {
				return r.client.Products().DeleteProduct(ctx, &retailpb.DeleteProductRequest{Name: name})
			},
			Callback: func(result *retail.BatchResult) {
				mu.Lock()
				defer mu.Unlock()

				switch {
				case result.Success:
					report.Deleted++
				case retail.IsPermissionDenied(result.Error):
					report.Skipped++

					r.logger.Debug("ignore PermissionDenied in case the product does not exist at time of deletion",
						map[string]interface{}{"product": result.ID})
				default:
					failed = append(failed, result.ID)
					errs = append(errs, fmt.Errorf("%s: %w", result.ID, result.Error))
				}
			},
		})
	}

	executor := retail.NewBatchExecutor(r.concurrency)
	executor.Execute(ctx, operations)

	report.Failed = failed

	if report.Skipped > 0 {
		r.printer.Messagef("Ignored PermissionDenied for %d products that did not exist at time of deletion.", report.Skipped)
	}

	r.printer.Messagef("%d products were deleted from %s", report.Deleted, r.names.Branch)

	if len(errs) > 0 {
		return report, fmt.Errorf("%w: %w", constants.ErrDeletionFailed, errors.Join(errs...))
	}

	return report, nil
}

func (r *Runner) listProductNames(ctx context.Context) ([]string, error) {
	var names []string

	req := &retailpb.ListProductsRequest{Parent: r.names.Branch}
	for product, err := range r.client.Products().ListProducts(ctx, req) {
		if err != nil {
			return nil, fmt.Errorf("failed to list products in %s: %w", r.names.Branch, err)
		}

		names = append(names, product.GetName())
	}

	return names, nil
}

// DeleteBucket deletes bucket, emptying it first when the service refuses to
// delete a non-empty bucket. A bucket that does not exist is reported and
// treated as already deleted.
func (r *Runner) DeleteBucket(ctx context.Context, bucket string) error {
	if bucket == "" {
		return constants.ErrBucketNameRequired
	}

	buckets := r.client.Buckets()

	exists, err := buckets.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}

	if !exists {
		r.printer.Messagef("Bucket '%s' already deleted.", bucket)

		return nil
	}

	err = buckets.DeleteBucket(ctx, bucket)

	switch {
	case err == nil:
	case retail.IsNotFound(err):
		r.printer.Messagef("Bucket '%s' already deleted.", bucket)

		return nil
	case retail.IsBucketNotEmpty(err):
		r.printer.Messagef("Bucket is not empty. Deleting objects from bucket.")

		if _, err := r.DeleteObjectsFromBucket(ctx, bucket); err != nil {
			return err
		}

		if err := buckets.DeleteBucket(ctx, bucket); err != nil && !retail.IsNotFound(err) {
			return fmt.Errorf("failed to delete bucket %s: %w", bucket, err)
		}
	default:
		return fmt.Errorf("failed to delete bucket %s: %w", bucket, err)
	}

	r.printer.Messagef("Bucket %s was deleted.", bucket)

	return nil
}

// DeleteObjectsFromBucket deletes every object in bucket and returns how many
// were deleted.
func (r *Runner) DeleteObjectsFromBucket(ctx context.Context, bucket string) (int, error) {
	buckets := r.client.Buckets()
	deleted := 0

	for object, err := range buckets.ListObjects(ctx, bucket) {
		if err != nil {
			return deleted, fmt.Errorf("failed to list objects in %s: %w", bucket, err)
		}

		if err := buckets.DeleteObject(ctx, bucket, object); err != nil {
			return deleted, fmt.Errorf("failed to delete object %s from %s: %w", object, bucket, err)
		}

		deleted++
	}

	r.printer.Messagef("All objects are deleted from GCS bucket %s", bucket)

	return deleted, nil
}

// RemoveTestResources deletes all products and then the bucket.
func (r *Runner) RemoveTestResources(ctx context.Context, bucket string) (*retail.DeleteReport, error) {
	if bucket == "" {
		return nil, constants.ErrBucketNameRequired
	}

	report, err := r.DeleteAllProducts(ctx)
	if err != nil {
		return report, err
	}

	if err := r.DeleteBucket(ctx, bucket); err != nil {
		return report, err
	}

	return report, nil
}

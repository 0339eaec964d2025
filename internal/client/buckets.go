package client

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"cloud.google.com/go/storage"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
	"google.golang.org/api/iterator"
)

// BucketsClient implements retail.BucketsClient.
type BucketsClient struct {
	client *storage.Client
}

// NewBucketsClient creates a new buckets client.
func NewBucketsClient(client *storage.Client) *BucketsClient {
	return &BucketsClient{client: client}
}

// BucketExists implements retail.BucketsClient.BucketExists.
func (c *BucketsClient) BucketExists(ctx context.Context, bucket string) (bool, error) {
	_, err := c.client.Bucket(bucket).Attrs(ctx)
	if errors.Is(err, storage.ErrBucketNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to get bucket %s: %w", bucket, err)
	}

	return true, nil
}

// DeleteBucket implements retail.BucketsClient.DeleteBucket. A missing
// bucket is reported as retail.ErrBucketNotFound.
func (c *BucketsClient) DeleteBucket(ctx context.Context, bucket string) error {
	err := c.client.Bucket(bucket).Delete(ctx)
	if errors.Is(err, storage.ErrBucketNotExist) {
		return fmt.Errorf("%w: %s", retail.ErrBucketNotFound, bucket)
	}

	return err
}

// ListObjects implements retail.BucketsClient.ListObjects.
func (c *BucketsClient) ListObjects(ctx context.Context, bucket string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		it := c.client.Bucket(bucket).Objects(ctx, nil)

		for {
			attrs, err := it.Next()
			if errors.Is(err, iterator.Done) {
				return
			}

			if err != nil {
				yield("", err)

				return
			}

			if !yield(attrs.Name, nil) {
				return
			}
		}
	}
}

// DeleteObject implements retail.BucketsClient.DeleteObject.
func (c *BucketsClient) DeleteObject(ctx context.Context, bucket, object string) error {
	err := c.client.Bucket(bucket).Object(object).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}

	return err
}

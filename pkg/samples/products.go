package samples

import (
	"context"
	"fmt"

	"cloud.google.com/go/retail/apiv2/retailpb"
	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
)

// CreateProduct creates the sample product with productID in the default
// branch.
func (r *Runner) CreateProduct(ctx context.Context, productID string) (*retailpb.Product, error) {
	if productID == "" {
		return nil, constants.ErrProductIDRequired
	}

	req := retail.NewCreateProductRequest(r.names.Branch, retail.NewSampleProduct(productID))
	if err := r.printer.Message("Create product request", req); err != nil {
		return nil, err
	}

	product, err := r.client.Products().CreateProduct(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create product %s: %w", productID, err)
	}

	if err := r.printer.Message("Created product", product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct fetches a product by full resource name.
func (r *Runner) GetProduct(ctx context.Context, name string) (*retailpb.Product, error) {
	req := &retailpb.GetProductRequest{Name: name}
	if err := r.printer.Message("Get product request", req); err != nil {
		return nil, err
	}

	product, err := r.client.Products().GetProduct(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", name, err)
	}

	if err := r.printer.Message("Get product response", product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct applies a partial update limited to paths.
func (r *Runner) UpdateProduct(ctx context.Context, product *retailpb.Product, paths ...string) (*retailpb.Product, error) {
	req := retail.NewUpdateProductRequest(product, paths...)
	if err := r.printer.Message("Update product request", req); err != nil {
		return nil, err
	}

	updated, err := r.client.Products().UpdateProduct(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", product.GetName(), err)
	}

	if err := r.printer.Message("Updated product", updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteProduct deletes a product by full resource name.
func (r *Runner) DeleteProduct(ctx context.Context, name string) error {
	req := &retailpb.DeleteProductRequest{Name: name}
	if err := r.printer.Message("Delete product request", req); err != nil {
		return err
	}

	if err := r.client.Products().DeleteProduct(ctx, req); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", name, err)
	}

	r.printer.Messagef("Product %s was deleted", name)

	return nil
}

// ProductExists reports whether a product exists.
func (r *Runner) ProductExists(ctx context.Context, name string) (bool, error) {
	_, err := r.client.Products().GetProduct(ctx, &retailpb.GetProductRequest{Name: name})
	if retail.IsNotFound(err) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to get product %s: %w", name, err)
	}

	return true, nil
}

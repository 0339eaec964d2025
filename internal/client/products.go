package client

import (
	"context"
	"errors"
	"iter"

	retailapi "cloud.google.com/go/retail/apiv2"
	"cloud.google.com/go/retail/apiv2/retailpb"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
	"google.golang.org/api/iterator"
)

// ProductsClient implements retail.ProductsClient.
type ProductsClient struct {
	client *retailapi.ProductClient
}

// NewProductsClient creates a new products client.
func NewProductsClient(client *retailapi.ProductClient) *ProductsClient {
	return &ProductsClient{client: client}
}

// CreateProduct implements retail.ProductsClient.CreateProduct.
func (c *ProductsClient) CreateProduct(ctx context.Context, req *retailpb.CreateProductRequest) (*retailpb.Product, error) {
	return c.client.CreateProduct(ctx, req)
}

// GetProduct implements retail.ProductsClient.GetProduct.
func (c *ProductsClient) GetProduct(ctx context.Context, req *retailpb.GetProductRequest) (*retailpb.Product, error) {
	return c.client.GetProduct(ctx, req)
}

// UpdateProduct implements retail.ProductsClient.UpdateProduct.
func (c *ProductsClient) UpdateProduct(ctx context.Context, req *retailpb.UpdateProductRequest) (*retailpb.Product, error) {
	return c.client.UpdateProduct(ctx, req)
}

// DeleteProduct implements retail.ProductsClient.DeleteProduct.
func (c *ProductsClient) DeleteProduct(ctx context.Context, req *retailpb.DeleteProductRequest) error {
	return c.client.DeleteProduct(ctx, req)
}

// ListProducts implements retail.ProductsClient.ListProducts.
func (c *ProductsClient) ListProducts(ctx context.Context, req *retailpb.ListProductsRequest) iter.Seq2[*retailpb.Product, error] {
	return func(yield func(*retailpb.Product, error) bool) {
		it := c.client.ListProducts(ctx, req)

		for {
			product, err := it.Next()
			if errors.Is(err, iterator.Done) {
				return
			}

			if err != nil {
				yield(nil, err)

				return
			}

			if !yield(product, nil) {
				return
			}
		}
	}
}

// SetInventory implements retail.ProductsClient.SetInventory.
func (c *ProductsClient) SetInventory(ctx context.Context, req *retailpb.SetInventoryRequest) (retail.InventoryOperation, error) {
	op, err := c.client.SetInventory(ctx, req)
	if err != nil {
		return nil, err
	}

	return &inventoryOperation{op: op}, nil
}

type inventoryOperation struct {
	op *retailapi.SetInventoryOperation
}

func (o *inventoryOperation) Name() string {
	return o.op.Name()
}

func (o *inventoryOperation) Wait(ctx context.Context) error {
	_, err := o.op.Wait(ctx)

	return err
}

package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	retailapi "cloud.google.com/go/retail/apiv2"
	"cloud.google.com/go/storage"
	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
)

// Client implements the retail.Client interface over the Retail API v2 and
// Cloud Storage SDK clients.
type Client struct {
	productClient *retailapi.ProductClient
	searchClient  *retailapi.SearchClient
	storageClient *storage.Client
	logger        retail.Logger

	products *ProductsClient
	search   *SearchClient
	buckets  *BucketsClient

	closeOnce sync.Once
	closeErr  error
}

// New creates the SDK clients described by config.
func New(ctx context.Context, config *retail.Config) (*Client, error) {
	if config == nil {
		return nil, constants.ErrConfigRequired
	}

	config.ApplyDefaults()

	opts := grpcOptions(config)

	productClient, err := retailapi.NewProductClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create product client: %w", err)
	}

	searchClient, err := retailapi.NewSearchClient(ctx, opts...)
	if err != nil {
		_ = productClient.Close()

		return nil, fmt.Errorf("failed to create search client: %w", err)
	}

	storageClient, err := newStorageClient(ctx, config)
	if err != nil {
		_ = productClient.Close()
		_ = searchClient.Close()

		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &Client{
		productClient: productClient,
		searchClient:  searchClient,
		storageClient: storageClient,
		logger:        config.Logger,
		products:      NewProductsClient(productClient),
		search:        NewSearchClient(searchClient),
		buckets:       NewBucketsClient(storageClient),
	}, nil
}

// grpcOptions builds the client options shared by the Retail API clients.
func grpcOptions(config *retail.Config) []option.ClientOption {
	opts := []option.ClientOption{
		option.WithEndpoint(config.Endpoint),
	}

	if interceptors := retail.Interceptors(config); len(interceptors) > 0 {
		opts = append(opts, option.WithGRPCDialOption(grpc.WithChainUnaryInterceptor(interceptors...)))
	}

	if config.UserAgent != "" {
		opts = append(opts, option.WithUserAgent(config.UserAgent))
	}

	return opts
}

// Products implements retail.Client.
func (c *Client) Products() retail.ProductsClient {
	return c.products
}

// Search implements retail.Client.
func (c *Client) Search() retail.SearchClient {
	return c.search
}

// Buckets implements retail.Client.
func (c *Client) Buckets() retail.BucketsClient {
	return c.buckets
}

// Close releases the connections of every SDK client. It is safe to call
// more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = errors.Join(
			c.productClient.Close(),
			c.searchClient.Close(),
			c.storageClient.Close(),
		)
	})

	return c.closeErr
}

package client

import (
	"context"
	"errors"
	"fmt"

	retailapi "cloud.google.com/go/retail/apiv2"
	"cloud.google.com/go/retail/apiv2/retailpb"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
	"google.golang.org/api/iterator"
)

// SearchClient implements retail.SearchClient.
type SearchClient struct {
	client *retailapi.SearchClient
}

// NewSearchClient creates a new search client.
func NewSearchClient(client *retailapi.SearchClient) *SearchClient {
	return &SearchClient{client: client}
}

// Search fetches a single page and returns the raw response of that page.
func (c *SearchClient) Search(ctx context.Context, req *retailpb.SearchRequest) (*retailpb.SearchResponse, error) {
	it := c.client.Search(ctx, req)

	// The first Next triggers the page fetch that populates it.Response.
	_, err := it.Next()
	if err != nil && !errors.Is(err, iterator.Done) {
		return nil, err
	}

	resp, ok := it.Response.(*retailpb.SearchResponse)
	if !ok {
		return nil, fmt.Errorf("%w: %T", retail.ErrUnexpectedResponse, it.Response)
	}

	return resp, nil
}

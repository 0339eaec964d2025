package samples

import (
	"context"
	"fmt"

	"cloud.google.com/go/retail/apiv2/retailpb"
	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
)

// SearchWithFacetSpec searches for "Tee" requesting the facet facetKey.
// An empty facetKey selects colorFamilies.
func (r *Runner) SearchWithFacetSpec(ctx context.Context, facetKey string) (*retailpb.SearchResponse, error) {
	if facetKey == "" {
		facetKey = constants.FacetKey
	}

	return r.Search(ctx, constants.FacetQuery, retail.WithFacetKey(facetKey))
}

// SearchWithOrdering searches for "Hoodie" sorted by orderBy. An empty
// orderBy selects "price desc".
func (r *Runner) SearchWithOrdering(ctx context.Context, orderBy string) (*retailpb.SearchResponse, error) {
	if orderBy == "" {
		orderBy = constants.OrderBy
	}

	return r.Search(ctx, constants.OrderingQuery, retail.WithOrderBy(orderBy))
}

// Search runs query against the default search placement and prints the
// request and the raw response.
func (r *Runner) Search(ctx context.Context, query string, opts ...retail.SearchOption) (*retailpb.SearchResponse, error) {
	if query == "" {
		return nil, constants.ErrQueryRequired
	}

	req := retail.NewSearchRequest(r.names.Placement, query, opts...)
	if err := r.printer.Message("Search request", req); err != nil {
		return nil, err
	}

	resp, err := r.client.Search().Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to search %q: %w", query, err)
	}

	r.logger.Debug("search completed", map[string]interface{}{
		"query":         query,
		"results":       len(resp.GetResults()),
		"total_size":    resp.GetTotalSize(),
		"attribution":   resp.GetAttributionToken(),
		"has_next_page": resp.GetNextPageToken() != "",
	})

	if err := r.printer.Message("Search response", resp); err != nil {
		return nil, err
	}

	return resp, nil
}

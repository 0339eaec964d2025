// Package retailclient provides the main entry point for creating Retail API clients.
package retailclient

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/retail-samples/internal/client"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
)

// New creates a Retail API client authenticated with Application Default
// Credentials.
func New(ctx context.Context, config *retail.Config) (retail.Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fivetwenty-io/retail-samples/internal/logger"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
	"github.com/fivetwenty-io/retail-samples/pkg/retailclient"
	"github.com/fivetwenty-io/retail-samples/pkg/samples"
	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	ProjectNumber string
	BucketName    string
	Verbose       bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		ProjectNumber: os.Getenv("PROJECT_NUMBER"),
		BucketName:    os.Getenv("BUCKET_NAME"),
		Verbose:       os.Getenv("RETAIL_VERBOSE") == "true",
	}
}

// SkipIfNotConfigured skips tests that need a real project.
func (c *TestConfig) SkipIfNotConfigured(t *testing.T) {
	t.Helper()

	if c.ProjectNumber == "" {
		t.Skip("PROJECT_NUMBER not set, skipping integration test")
	}
}

// NewRunner creates a client and runner against the configured project. The
// client is closed when the test ends.
func (c *TestConfig) NewRunner(t *testing.T, opts ...samples.Option) *samples.Runner {
	t.Helper()

	level := "warn"
	if c.Verbose {
		level = "debug"
	}

	log, err := logger.New(level)
	require.NoError(t, err)

	config := &retail.Config{
		ProjectNumber:  c.ProjectNumber,
		BucketName:     c.BucketName,
		RequestTimeout: time.Minute,
		InventoryWait:  30 * time.Second,
		Logger:         log,
		Metrics:        retail.NewMetricsCollector(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := retailclient.New(ctx, config)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
		_ = log.Sync()
	})

	return samples.NewRunnerFromConfig(client, config, os.Stdout, opts...)
}

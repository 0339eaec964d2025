package client

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/storage"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
	"github.com/hashicorp/go-retryablehttp"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"
)

// newStorageClient creates a Cloud Storage client whose authenticated
// transport is wrapped in a retrying HTTP client.
func newStorageClient(ctx context.Context, config *retail.Config) (*storage.Client, error) {
	authTransport, err := htransport.NewTransport(ctx, http.DefaultTransport,
		option.WithScopes(storage.ScopeFullControl))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage transport: %w", err)
	}

	retryClient := NewRetryableHTTPClient(config, authTransport)

	opts := []option.ClientOption{option.WithHTTPClient(retryClient.StandardClient())}
	if config.UserAgent != "" {
		opts = append(opts, option.WithUserAgent(config.UserAgent))
	}

	return storage.NewClient(ctx, opts...)
}

// NewRetryableHTTPClient creates a retrying HTTP client over transport using
// the retry settings of config.
func NewRetryableHTTPClient(config *retail.Config, transport http.RoundTripper) *retryablehttp.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{Transport: transport}
	retryClient.RetryMax = config.RetryMax
	retryClient.RetryWaitMin = config.RetryWaitMin
	retryClient.RetryWaitMax = config.RetryWaitMax
	retryClient.Logger = nil

	if config.Logger != nil {
		retryClient.Logger = &LeveledLogger{logger: config.Logger}
	}

	return retryClient
}

// LeveledLogger adapts retail.Logger to retryablehttp.LeveledLogger.
type LeveledLogger struct {
	logger retail.Logger
}

// NewLeveledLogger creates a new leveled logger adapter.
func NewLeveledLogger(logger retail.Logger) *LeveledLogger {
	return &LeveledLogger{logger: logger}
}

// Error implements retryablehttp.LeveledLogger.
func (l *LeveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fieldsFromKeysAndValues(keysAndValues))
}

// Info implements retryablehttp.LeveledLogger.
func (l *LeveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fieldsFromKeysAndValues(keysAndValues))
}

// Debug implements retryablehttp.LeveledLogger.
func (l *LeveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fieldsFromKeysAndValues(keysAndValues))
}

// Warn implements retryablehttp.LeveledLogger.
func (l *LeveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fieldsFromKeysAndValues(keysAndValues))
}

func fieldsFromKeysAndValues(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2) //nolint:mnd // pairs

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	if len(keysAndValues)%2 == 1 {
		fields["extra"] = keysAndValues[len(keysAndValues)-1]
	}

	return fields
}

package constants

import "errors"

// Configuration errors.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrProjectNumberRequired = errors.New("project number is required, set PROJECT_NUMBER or --project")
	ErrBucketNameRequired    = errors.New("bucket name is required, set BUCKET_NAME or --bucket")
	ErrInvalidOutputFormat   = errors.New("invalid output format")
	ErrInvalidConcurrency    = errors.New("concurrency must be between 1 and 16")
)

// Argument errors.
var (
	ErrProductIDRequired = errors.New("product id is required")
	ErrQueryRequired     = errors.New("search query is required")
)

// Operation errors.
var (
	ErrUnexpectedResponse = errors.New("unexpected response type")
	ErrClientClosed       = errors.New("client is closed")
	ErrDeletionFailed     = errors.New("some products could not be deleted")
)

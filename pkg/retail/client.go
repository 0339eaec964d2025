package retail

import (
	"context"
	"iter"
	"time"

	"cloud.google.com/go/retail/apiv2/retailpb"
	"google.golang.org/grpc"
)

// ProductsClient provides access to catalog products.
type ProductsClient interface {
	CreateProduct(ctx context.Context, req *retailpb.CreateProductRequest) (*retailpb.Product, error)
	GetProduct(ctx context.Context, req *retailpb.GetProductRequest) (*retailpb.Product, error)
	UpdateProduct(ctx context.Context, req *retailpb.UpdateProductRequest) (*retailpb.Product, error)
	DeleteProduct(ctx context.Context, req *retailpb.DeleteProductRequest) error
	// ListProducts yields every product under the request parent, following
	// page tokens until the listing is exhausted or the caller stops.
	ListProducts(ctx context.Context, req *retailpb.ListProductsRequest) iter.Seq2[*retailpb.Product, error]
	// SetInventory starts an asynchronous inventory update.
	SetInventory(ctx context.Context, req *retailpb.SetInventoryRequest) (InventoryOperation, error)
}

// InventoryOperation is a started set-inventory long-running operation.
type InventoryOperation interface {
	Name() string
	Wait(ctx context.Context) error
}

// SearchClient provides access to product search.
type SearchClient interface {
	// Search returns the first page of results for the request.
	Search(ctx context.Context, req *retailpb.SearchRequest) (*retailpb.SearchResponse, error)
}

// BucketsClient provides the Cloud Storage operations used to clean up
// tutorial fixtures.
type BucketsClient interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	DeleteBucket(ctx context.Context, bucket string) error
	ListObjects(ctx context.Context, bucket string) iter.Seq2[string, error]
	DeleteObject(ctx context.Context, bucket, object string) error
}

// Client groups the resource clients used by the tutorials.
type Client interface {
	Products() ProductsClient
	Search() SearchClient
	Buckets() BucketsClient
	Close() error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a retail.Client.
//
// # Credentials
//
// Clients authenticate with Application Default Credentials. Run
// `gcloud auth application-default login` or point
// GOOGLE_APPLICATION_CREDENTIALS at a service account key before running a
// tutorial.
//
// # Timeouts and retries
//
// Per-call deadlines come from the context passed to each client method.
// RequestTimeout is applied by an interceptor to RPCs issued without a
// deadline. Cloud Storage requests go through a retrying HTTP transport tuned
// by RetryMax/RetryWaitMin/RetryWaitMax.
type Config struct {
	// ProjectNumber is the Google Cloud project number owning the catalog.
	ProjectNumber string
	// BucketName is the Cloud Storage bucket removed by the cleanup tutorial.
	BucketName string
	// Endpoint overrides the Retail API endpoint (host:port).
	Endpoint string

	// RequestTimeout bounds RPCs issued without a context deadline.
	RequestTimeout time.Duration
	// InventoryWait is how long the inventory tutorial sleeps after
	// submitting an update. Zero disables the wait; a negative value selects
	// the 30 second default.
	InventoryWait time.Duration
	// Concurrency is the worker count used for bulk product deletion.
	Concurrency int

	// RetryMax is the maximum number of retries for Cloud Storage requests.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Logger is an optional structured logger used by interceptors and the
	// storage transport.
	Logger Logger
	// Metrics optionally collects per-method RPC metrics.
	Metrics *MetricsCollector
	// Interceptors are appended after the built-in logging, timeout and
	// metrics interceptors.
	Interceptors []grpc.UnaryClientInterceptor
	// UserAgent is appended to the default user agent of the SDK clients.
	UserAgent string
}

// DeleteReport summarises a bulk product deletion.
type DeleteReport struct {
	Listed  int      `json:"listed"  yaml:"listed"`
	Deleted int      `json:"deleted" yaml:"deleted"`
	Skipped int      `json:"skipped" yaml:"skipped"`
	Failed  []string `json:"failed,omitempty" yaml:"failed,omitempty"`
}

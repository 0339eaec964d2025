package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Environment variables read by the samples.
const (
	// EnvProjectNumber holds the Google Cloud project number.
	EnvProjectNumber = "PROJECT_NUMBER"

	// EnvBucketName holds the Cloud Storage bucket used by the import tutorials.
	EnvBucketName = "BUCKET_NAME"

	// EnvPrefix is the prefix for every other setting read from the environment.
	EnvPrefix = "RETAIL"
)

// Endpoints.
const (
	// DefaultEndpoint is the Retail API gRPC endpoint.
	DefaultEndpoint = "retail.googleapis.com:443"
)

// Resource name templates and fixed segments.
const (
	// CatalogTemplate expands to the default catalog of a project.
	CatalogTemplate = "projects/%s/locations/global/catalogs/default_catalog"

	// DefaultBranchSegment is appended to the catalog name.
	DefaultBranchSegment = "/branches/default_branch"

	// DefaultPlacementSegment is appended to the catalog name.
	DefaultPlacementSegment = "/placements/default_search"

	// DefaultServingConfigSegment is appended to the catalog name.
	DefaultServingConfigSegment = "/servingConfigs/default_search"

	// ProductsSegment precedes a product id in a product name.
	ProductsSegment = "/products/"
)

// Timeouts and waits.
const (
	// DefaultRequestTimeout bounds a single command.
	DefaultRequestTimeout = 2 * time.Minute

	// DefaultOperationTimeout bounds a single batch operation.
	DefaultOperationTimeout = 30 * time.Second

	// DefaultInventoryWait approximates completion of a set-inventory operation.
	DefaultInventoryWait = 30 * time.Second
)

// Retry settings for the Cloud Storage HTTP transport.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Concurrency limits.
const (
	// DefaultConcurrency keeps bulk deletion sequential.
	DefaultConcurrency = 1

	// MaxConcurrency caps the bulk deletion worker pool.
	MaxConcurrency = 16
)

// Search defaults.
const (
	// DefaultPageSize is the number of results requested per search page.
	DefaultPageSize = 10

	// FacetQuery is the query used by the facet tutorial.
	FacetQuery = "Tee"

	// FacetKey is the facet requested by the facet tutorial.
	FacetKey = "colorFamilies"

	// OrderingQuery is the query used by the ordering tutorial.
	OrderingQuery = "Hoodie"

	// OrderBy is the sort expression used by the ordering tutorial.
	OrderBy = "price desc"
)

// Product fixtures.
const (
	// InventoryProductID is the product created by the inventory tutorial.
	InventoryProductID = "inventory_test_product_id"

	// CurrencyCode is used for every price in the fixtures.
	CurrencyCode = "USD"

	// PickupInStore is the fulfillment type set by the inventory tutorial.
	PickupInStore = "pickup-in-store"
)

// Format constants.
const (
	// FormatText prints protobuf messages in text form.
	FormatText = "text"

	// FormatJSON represents JSON output format.
	FormatJSON = "json"

	// FormatYAML represents YAML output format.
	FormatYAML = "yaml"

	// FormatTable represents table output format.
	FormatTable = "table"
)

// Log levels.
const (
	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
)

// Confirmation constants.
const (
	// ConfirmYes is the short affirmative answer.
	ConfirmYes = "y"

	// ConfirmYesFull is the long affirmative answer.
	ConfirmYesFull = "yes"
)

// Metadata keys shared by interceptors.
const (
	// MetadataStartTime records when an RPC started.
	MetadataStartTime = "start_time"
)

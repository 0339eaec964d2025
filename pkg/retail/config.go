package retail

import (
	"fmt"

	"github.com/fivetwenty-io/retail-samples/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired        = constants.ErrConfigRequired
	ErrProjectNumberRequired = constants.ErrProjectNumberRequired
	ErrBucketNameRequired    = constants.ErrBucketNameRequired
	ErrInvalidConcurrency    = constants.ErrInvalidConcurrency
)

// Validate checks the fields every tutorial needs.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	if c.ProjectNumber == "" {
		return ErrProjectNumberRequired
	}

	if c.Concurrency < 0 || c.Concurrency > constants.MaxConcurrency {
		return fmt.Errorf("%w: %d", ErrInvalidConcurrency, c.Concurrency)
	}

	return nil
}

// ApplyDefaults fills zero-valued fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = constants.DefaultEndpoint
	}

	if c.RequestTimeout <= 0 {
		c.RequestTimeout = constants.DefaultRequestTimeout
	}

	if c.InventoryWait < 0 {
		c.InventoryWait = constants.DefaultInventoryWait
	}

	if c.Concurrency == 0 {
		c.Concurrency = constants.DefaultConcurrency
	}

	if c.RetryMax == 0 {
		c.RetryMax = constants.DefaultRetryMax
	}

	if c.RetryWaitMin == 0 {
		c.RetryWaitMin = constants.DefaultRetryWaitMin
	}

	if c.RetryWaitMax == 0 {
		c.RetryWaitMax = constants.DefaultRetryWaitMax
	}
}

// Names returns the resource names derived from the project number.
func (c *Config) Names() ResourceNames {
	return NewResourceNames(c.ProjectNumber)
}

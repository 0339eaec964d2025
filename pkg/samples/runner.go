// Package samples implements the Retail API tutorials: search with facets or
// ordering, product setup and cleanup helpers, inventory updates and removal
// of test resources.
//
// Each tutorial builds its request, calls the client, and prints the raw
// request and response through an output.Printer.
package samples

import (
	"context"
	"io"
	"time"

	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"github.com/fivetwenty-io/retail-samples/internal/logger"
	"github.com/fivetwenty-io/retail-samples/internal/output"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
)

// Runner runs tutorials against one client and catalog.
type Runner struct {
	client      retail.Client
	names       retail.ResourceNames
	printer     *output.Printer
	logger      retail.Logger
	concurrency int
	wait        time.Duration
	now         func() time.Time
	sleep       func(ctx context.Context, d time.Duration) error
}

// Option configures a Runner.
type Option func(*Runner)

// WithPrinter sets the printer used for requests and responses.
func WithPrinter(printer *output.Printer) Option {
	return func(r *Runner) {
		r.printer = printer
	}
}

// WithLogger sets the logger.
func WithLogger(logger retail.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithConcurrency sets the worker count for bulk deletion.
func WithConcurrency(concurrency int) Option {
	return func(r *Runner) {
		r.concurrency = concurrency
	}
}

// WithInventoryWait sets how long SetInventory sleeps after submitting.
func WithInventoryWait(wait time.Duration) Option {
	return func(r *Runner) {
		r.wait = wait
	}
}

// WithClock replaces time.Now and the sleep used while waiting for inventory
// updates.
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}

		if sleep != nil {
			r.sleep = sleep
		}
	}
}

// NewRunner creates a runner printing text to out unless WithPrinter is given.
func NewRunner(client retail.Client, names retail.ResourceNames, out io.Writer, opts ...Option) *Runner {
	printer, _ := output.NewPrinter(constants.FormatText, out)

	runner := &Runner{
		client:      client,
		names:       names,
		printer:     printer,
		logger:      logger.Nop(),
		concurrency: constants.DefaultConcurrency,
		wait:        constants.DefaultInventoryWait,
		now:         time.Now,
		sleep:       sleepContext,
	}

	for _, opt := range opts {
		opt(runner)
	}

	return runner
}

// Names returns the resource names the runner works on.
func (r *Runner) Names() retail.ResourceNames {
	return r.names
}

// NewRunnerFromConfig creates a runner using the names, wait and concurrency
// of config.
func NewRunnerFromConfig(client retail.Client, config *retail.Config, out io.Writer, opts ...Option) *Runner {
	base := []Option{
		WithConcurrency(config.Concurrency),
		WithInventoryWait(config.InventoryWait),
	}

	if config.Logger != nil {
		base = append(base, WithLogger(config.Logger))
	}

	return NewRunner(client, config.Names(), out, append(base, opts...)...)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

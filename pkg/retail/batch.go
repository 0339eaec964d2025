package retail

import (
	"context"
	"sync"
	"time"

	"github.com/fivetwenty-io/retail-samples/internal/constants"
)

// BatchOperation represents a single operation in a batch.
type BatchOperation struct {
	ID       string
	Run      func(ctx context.Context) error
	Callback func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID       string
	Success  bool
	Error    error
	Duration time.Duration
}

// BatchExecutor runs operations on a bounded number of goroutines.
type BatchExecutor struct {
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor. A non-positive concurrency
// runs operations one at a time.
func NewBatchExecutor(concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultConcurrency
	}

	if concurrency > constants.MaxConcurrency {
		concurrency = constants.MaxConcurrency
	}

	return &BatchExecutor{
		concurrency: concurrency,
		timeout:     constants.DefaultOperationTimeout,
	}
}

// SetTimeout sets the per-operation timeout.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Concurrency returns the number of workers.
func (b *BatchExecutor) Concurrency() int {
	return b.concurrency
}

// Execute runs a batch of operations. Results are returned in operation order.
// Operations not yet started when ctx is cancelled fail with the context error.
// Callbacks run on the worker goroutines and may run concurrently.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) []BatchResult {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			result := &BatchResult{ID: operation.ID}

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()

				opCtx, cancel := context.WithTimeout(ctx, b.timeout)
				defer cancel()

				start := time.Now()
				result.Error = b.executeOperation(opCtx, operation)
				result.Duration = time.Since(start)
				result.Success = result.Error == nil
			case <-ctx.Done():
				result.Error = ctx.Err()
			}

			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results
}

func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) error {
	if operation.Run == nil {
		return nil
	}

	return operation.Run(ctx)
}

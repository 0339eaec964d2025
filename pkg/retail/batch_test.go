package retail_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fivetwenty-io/retail-samples/pkg/retail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errOperation = errors.New("operation failed")

func TestBatchExecutor_Execute(t *testing.T) {
	t.Parallel()

	executor := retail.NewBatchExecutor(2)

	var (
		mu        sync.Mutex
		callbacks []string
	)

	record := func(result *retail.BatchResult) {
		mu.Lock()
		defer mu.Unlock()

		callbacks = append(callbacks, result.ID)
	}

	operations := []retail.BatchOperation{
		{ID: "op1", Run: func(ctx context.Context) error { return nil }, Callback: record},
		{ID: "op2", Run: func(ctx context.Context) error { return errOperation }, Callback: record},
		{ID: "op3", Callback: record},
	}

	results := executor.Execute(context.Background(), operations)
	require.Len(t, results, 3)

	assert.Equal(t, "op1", results[0].ID)
	assert.True(t, results[0].Success)
	assert.Equal(t, "op2", results[1].ID)
	assert.False(t, results[1].Success)
	require.ErrorIs(t, results[1].Error, errOperation)
	assert.True(t, results[2].Success)

	assert.ElementsMatch(t, []string{"op1", "op2", "op3"}, callbacks)
}

func TestBatchExecutor_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	executor := retail.NewBatchExecutor(3)

	var running, peak int32

	operations := make([]retail.BatchOperation, 12)
	for i := range operations {
		operations[i] = retail.BatchOperation{
			Run: func(ctx context.Context) error {
				current := atomic.AddInt32(&running, 1)
				for {
					old := atomic.LoadInt32(&peak)
					if current <= old || atomic.CompareAndSwapInt32(&peak, old, current) {
						break
					}
				}

				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&running, -1)

				return nil
			},
		}
	}

	executor.Execute(context.Background(), operations)

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
	assert.Positive(t, atomic.LoadInt32(&peak))
}

func TestBatchExecutor_ClampsConcurrency(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, retail.NewBatchExecutor(0).Concurrency())
	assert.Equal(t, 1, retail.NewBatchExecutor(-3).Concurrency())
	assert.Equal(t, 16, retail.NewBatchExecutor(100).Concurrency())
}

func TestBatchExecutor_OperationTimeout(t *testing.T) {
	t.Parallel()

	executor := retail.NewBatchExecutor(1)
	executor.SetTimeout(10 * time.Millisecond)

	results := executor.Execute(context.Background(), []retail.BatchOperation{
		{
			ID: "slow",
			Run: func(ctx context.Context) error {
				<-ctx.Done()

				return ctx.Err()
			},
		},
	})

	require.Len(t, results, 1)
	require.ErrorIs(t, results[0].Error, context.DeadlineExceeded)
}

func TestBatchExecutor_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran int32

	executor := retail.NewBatchExecutor(1)
	operations := make([]retail.BatchOperation, 5)

	for i := range operations {
		operations[i] = retail.BatchOperation{
			Run: func(ctx context.Context) error {
				atomic.AddInt32(&ran, 1)

				return ctx.Err()
			},
		}
	}

	results := executor.Execute(ctx, operations)

	for _, result := range results {
		assert.False(t, result.Success)
		require.ErrorIs(t, result.Error, context.Canceled)
	}
}

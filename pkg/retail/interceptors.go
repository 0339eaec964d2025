package retail

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor logs every unary RPC with its duration and status code.
func LoggingInterceptor(logger Logger) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, conn *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		logger.Debug("API Request", map[string]interface{}{
			"method": method,
		})

		start := time.Now()
		err := invoker(ctx, method, req, reply, conn, opts...)

		fields := map[string]interface{}{
			"method":   method,
			"duration": time.Since(start).String(),
			"code":     status.Code(err).String(),
		}

		if err != nil {
			fields["error"] = err.Error()
			logger.Error("API Response Error", fields)
		} else {
			logger.Debug("API Response", fields)
		}

		return err
	}
}

// TimeoutInterceptor applies timeout to RPCs issued without a deadline.
func TimeoutInterceptor(timeout time.Duration) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, conn *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if _, ok := ctx.Deadline(); ok || timeout <= 0 {
			return invoker(ctx, method, req, reply, conn, opts...)
		}

		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		return invoker(ctx, method, req, reply, conn, opts...)
	}
}

// Metrics holds call statistics for one RPC method.
type Metrics struct {
	TotalRequests   int64
	TotalErrors     int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

// MetricsCollector collects API metrics.
type MetricsCollector struct {
	mu       sync.Mutex
	metrics  map[string]*Metrics
	onChange func(method string, metrics Metrics)
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[string]*Metrics),
	}
}

// SetOnChange sets a callback for when metrics change.
func (m *MetricsCollector) SetOnChange(fn func(method string, metrics Metrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onChange = fn
}

// GetMetrics returns a snapshot of the metrics for a method.
func (m *MetricsCollector) GetMetrics(method string) (Metrics, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if metrics, ok := m.metrics[method]; ok {
		return *metrics, true
	}

	return Metrics{}, false
}

// Methods returns the methods seen so far.
func (m *MetricsCollector) Methods() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	methods := make([]string, 0, len(m.metrics))
	for method := range m.metrics {
		methods = append(methods, method)
	}

	return methods
}

// Record adds one call to the metrics of method.
func (m *MetricsCollector) Record(method string, latency time.Duration, err error) {
	m.mu.Lock()

	metrics, ok := m.metrics[method]
	if !ok {
		metrics = &Metrics{}
		m.metrics[method] = metrics
	}

	metrics.TotalRequests++
	metrics.LastRequestTime = time.Now()
	metrics.TotalLatency += latency
	metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)

	if err != nil {
		metrics.TotalErrors++
	}

	snapshot := *metrics
	onChange := m.onChange
	m.mu.Unlock()

	if onChange != nil {
		onChange(method, snapshot)
	}
}

// MetricsInterceptor records every unary RPC in collector.
func MetricsInterceptor(collector *MetricsCollector) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, conn *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, conn, opts...)
		collector.Record(method, time.Since(start), err)

		return err
	}
}

// Interceptors returns the interceptor chain described by config.
func Interceptors(config *Config) []grpc.UnaryClientInterceptor {
	var chain []grpc.UnaryClientInterceptor

	if config.Logger != nil {
		chain = append(chain, LoggingInterceptor(config.Logger))
	}

	if config.RequestTimeout > 0 {
		chain = append(chain, TimeoutInterceptor(config.RequestTimeout))
	}

	if config.Metrics != nil {
		chain = append(chain, MetricsInterceptor(config.Metrics))
	}

	return append(chain, config.Interceptors...)
}

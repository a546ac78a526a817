package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records cache lookup metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must return quickly and never block the lookup path.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordLookup records one cache lookup. For misses, computeDuration
	// is the time spent in the compute function and err its failure, if
	// any. For hits both are zero values.
	RecordLookup(ctx context.Context, meta QueryMeta, hit bool, computeDuration time.Duration, err error)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	lookupCount metric.Int64Counter
	hitCount    metric.Int64Counter
	missCount   metric.Int64Counter
	errorCount  metric.Int64Counter
	computeHist metric.Float64Histogram
}

// NewMetrics creates a Metrics instance on the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	lookupCount, err := meter.Int64Counter(
		"cache.lookups.total",
		metric.WithDescription("Total number of cache lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	hitCount, err := meter.Int64Counter(
		"cache.hits.total",
		metric.WithDescription("Total number of cache hits"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, err
	}

	missCount, err := meter.Int64Counter(
		"cache.misses.total",
		metric.WithDescription("Total number of cache misses"),
		metric.WithUnit("{miss}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"cache.compute.errors",
		metric.WithDescription("Total number of compute failures on cache miss"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	computeHist, err := meter.Float64Histogram(
		"cache.compute.duration_ms",
		metric.WithDescription("Compute duration on cache miss in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		lookupCount: lookupCount,
		hitCount:    hitCount,
		missCount:   missCount,
		errorCount:  errorCount,
		computeHist: computeHist,
	}, nil
}

// RecordLookup records counters and, on miss, the compute duration.
func (m *metricsImpl) RecordLookup(ctx context.Context, meta QueryMeta, hit bool, computeDuration time.Duration, err error) {
	attrs := []attribute.KeyValue{}
	if meta.Command != "" {
		attrs = append(attrs, attribute.String("cache.command", meta.Command))
	}
	opt := metric.WithAttributes(attrs...)

	m.lookupCount.Add(ctx, 1, opt)

	if hit {
		m.hitCount.Add(ctx, 1, opt)
		return
	}

	m.missCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.computeHist.Record(ctx, float64(computeDuration.Milliseconds()), opt)
}

// nopMetrics is a metrics sink that does nothing.
type nopMetrics struct{}

// NewNopMetrics creates a no-op Metrics sink.
func NewNopMetrics() Metrics {
	return &nopMetrics{}
}

func (m *nopMetrics) RecordLookup(ctx context.Context, meta QueryMeta, hit bool, computeDuration time.Duration, err error) {
}

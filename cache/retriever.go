package cache

import (
	"bytes"
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/querycache/observe"
)

// ComputeFunc produces the bytes for a cache miss. It is invoked only
// when the store has no entry for the derived key, and always outside
// the store's lock.
type ComputeFunc func(ctx context.Context) ([]byte, error)

// Retriever memoizes query results: probe the store, compute on miss,
// conditionally write back.
//
// Contract:
// - Concurrency: safe for concurrent use. The store lock covers only
//   probe and insert, so two concurrent misses for the same key may
//   both compute unless single-flight is enabled.
// - Errors: the only failure channel is compute's error, propagated
//   unmodified. The store is left untouched on failure.
type Retriever struct {
	store   Store
	keyer   Keyer
	logger  observe.Logger
	tracer  observe.Tracer
	metrics observe.Metrics
	group   *singleflight.Group
}

// Option configures a Retriever.
type Option func(*Retriever)

// WithKeyer sets the key derivation strategy. Defaults to DefaultKeyer.
func WithKeyer(k Keyer) Option {
	return func(r *Retriever) {
		if k != nil {
			r.keyer = k
		}
	}
}

// WithLogger sets the logger used for hit diagnostics. Defaults to a no-op logger.
func WithLogger(l observe.Logger) Option {
	return func(r *Retriever) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTracer sets the tracer wrapping each retrieve. Defaults to a no-op tracer.
func WithTracer(t observe.Tracer) Option {
	return func(r *Retriever) {
		if t != nil {
			r.tracer = t
		}
	}
}

// WithMetrics sets the lookup metrics sink. Defaults to a no-op sink.
func WithMetrics(m observe.Metrics) Option {
	return func(r *Retriever) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithSingleFlight dedupes concurrent misses per key: one caller runs
// compute, the rest wait and share its outcome. The computing caller's
// persist flag governs the write-back; every caller receives its own
// copy of the result. A shared failure is delivered to all waiters
// unmodified.
func WithSingleFlight() Option {
	return func(r *Retriever) {
		r.group = &singleflight.Group{}
	}
}

// New creates a Retriever over the given store.
func New(store Store, opts ...Option) (*Retriever, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	r := &Retriever{
		store:   store,
		keyer:   NewDefaultKeyer(),
		logger:  observe.NewNopLogger(),
		tracer:  observe.NewNopTracer(),
		metrics: observe.NewNopMetrics(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Retrieve returns the cached result for (sql, command), computing and
// optionally persisting it on miss.
//
// On hit, compute is never invoked and a copy of the stored bytes is
// returned. On miss, compute runs outside the store lock; its failure
// propagates unmodified and nothing is written. On success the result
// is returned to the caller and, when persist is true, written back,
// possibly evicting the least-recently-used entry.
func (r *Retriever) Retrieve(ctx context.Context, sql, command string, persist bool, compute ComputeFunc) ([]byte, error) {
	if compute == nil {
		return nil, ErrNilCompute
	}

	key := r.keyer.Key(sql, command)
	meta := observe.QueryMeta{Command: command, Key: key}

	ctx, span := r.tracer.StartSpan(ctx, meta)

	if cached, ok := r.store.Get(key); ok {
		r.logger.Debug(ctx, "cache hit", observe.Field{Key: "key", Value: key})
		r.metrics.RecordLookup(ctx, meta, true, 0, nil)
		r.tracer.EndSpan(span, true, nil)
		return cached, nil
	}

	start := time.Now()
	result, err := r.compute(ctx, key, persist, compute)
	r.metrics.RecordLookup(ctx, meta, false, time.Since(start), err)
	r.tracer.EndSpan(span, false, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// compute runs the miss path, deduplicating per key when single-flight
// is enabled.
func (r *Retriever) compute(ctx context.Context, key string, persist bool, compute ComputeFunc) ([]byte, error) {
	if r.group == nil {
		return r.computeAndPersist(ctx, key, persist, compute)
	}

	val, err, shared := r.group.Do(key, func() (any, error) {
		return r.computeAndPersist(ctx, key, persist, compute)
	})
	if err != nil {
		return nil, err
	}
	result := val.([]byte)
	if shared {
		// Callers sharing an in-flight result must not alias each other.
		result = bytes.Clone(result)
	}
	return result, nil
}

func (r *Retriever) computeAndPersist(ctx context.Context, key string, persist bool, compute ComputeFunc) ([]byte, error) {
	result, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	if persist {
		r.store.Put(key, result)
	}
	return result, nil
}

// Retrieve probes store for the result of (sql, command), computing and
// optionally persisting it on miss. It is the plain-function form of
// Retriever.Retrieve, using default key derivation and no telemetry.
func Retrieve(ctx context.Context, store Store, sql, command string, persist bool, compute ComputeFunc) ([]byte, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if compute == nil {
		return nil, ErrNilCompute
	}

	key := DeriveKey(sql, command)

	if cached, ok := store.Get(key); ok {
		return cached, nil
	}

	result, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	if persist {
		store.Put(key, result)
	}

	return result, nil
}

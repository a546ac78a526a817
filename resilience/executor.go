package resilience

import (
	"context"
	"time"
)

// Executor composes resilience patterns around a compute operation.
type Executor struct {
	retry   *Retry
	timeout *Timeout
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// NewExecutor creates a new resilience executor.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithRetry adds retry logic to the executor.
func WithRetry(r *Retry) ExecutorOption {
	return func(e *Executor) {
		e.retry = r
	}
}

// WithTimeout adds a timeout to the executor.
func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.timeout = NewTimeout(TimeoutConfig{Timeout: timeout})
	}
}

// WithTimeoutConfig adds a timeout with custom config to the executor.
func WithTimeoutConfig(t *Timeout) ExecutorOption {
	return func(e *Executor) {
		e.timeout = t
	}
}

// Execute runs the operation through the configured patterns: the
// timeout bounds each individual attempt, retry wraps around it.
func (e *Executor) Execute(ctx context.Context, op Op) ([]byte, error) {
	if op == nil {
		return nil, ErrNilOperation
	}
	return e.Wrap(op)(ctx)
}

// Wrap returns an Op applying the executor's patterns around op. The
// result is signature-compatible with the cache layer's compute
// functions.
func (e *Executor) Wrap(op Op) Op {
	wrapped := op

	if e.timeout != nil {
		wrapped = e.timeout.Wrap(wrapped)
	}
	if e.retry != nil {
		wrapped = e.retry.Wrap(wrapped)
	}

	return wrapped
}

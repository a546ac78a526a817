package resilience

import (
	"context"
	"time"
)

// TimeoutConfig configures the timeout wrapper.
type TimeoutConfig struct {
	// Timeout is the maximum duration for the operation.
	// Default: 30 seconds
	Timeout time.Duration
}

// Timeout wraps operations with a timeout.
type Timeout struct {
	config TimeoutConfig
}

// NewTimeout creates a new timeout wrapper.
func NewTimeout(config TimeoutConfig) *Timeout {
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &Timeout{config: config}
}

type opResult struct {
	value []byte
	err   error
}

// Execute runs the operation with a timeout. The operation's context
// is cancelled at the deadline; if it keeps running anyway, its result
// is discarded.
func (t *Timeout) Execute(ctx context.Context, op Op) ([]byte, error) {
	if op == nil {
		return nil, ErrNilOperation
	}

	ctx, cancel := context.WithTimeout(ctx, t.config.Timeout)
	defer cancel()

	done := make(chan opResult, 1)

	go func() {
		value, err := op(ctx)
		done <- opResult{value: value, err: err}
	}()

	select {
	case res := <-done:
		return res.value, res.err
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrTimeout
		}
		return nil, ctx.Err()
	}
}

// Wrap returns an Op that applies the timeout around op.
func (t *Timeout) Wrap(op Op) Op {
	return func(ctx context.Context) ([]byte, error) {
		return t.Execute(ctx, op)
	}
}

// Config returns the timeout configuration.
func (t *Timeout) Config() TimeoutConfig {
	return t.config
}

// ExecuteWithTimeout is a convenience function to run an operation with a timeout.
func ExecuteWithTimeout(ctx context.Context, timeout time.Duration, op Op) ([]byte, error) {
	t := NewTimeout(TimeoutConfig{Timeout: timeout})
	return t.Execute(ctx, op)
}

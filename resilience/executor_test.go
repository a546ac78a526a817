package resilience

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestExecutor_Passthrough(t *testing.T) {
	e := NewExecutor()

	result, err := e.Execute(context.Background(), func(ctx context.Context) ([]byte, error) {
		return []byte("plain"), nil
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !bytes.Equal(result, []byte("plain")) {
		t.Errorf("result = %q, want %q", result, "plain")
	}
}

func TestExecutor_NilOperation(t *testing.T) {
	e := NewExecutor()
	if _, err := e.Execute(context.Background(), nil); !errors.Is(err, ErrNilOperation) {
		t.Fatalf("Execute(nil) = %v, want %v", err, ErrNilOperation)
	}
}

func TestExecutor_RetryOnly(t *testing.T) {
	e := NewExecutor(WithRetry(NewRetry(RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Strategy:     BackoffConstant,
		Jitter:       false,
	})))
	calls := 0

	result, err := e.Execute(context.Background(), func(ctx context.Context) ([]byte, error) {
		calls++
		if calls < 2 {
			return nil, errors.New("transient")
		}
		return []byte("ok"), nil
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !bytes.Equal(result, []byte("ok")) {
		t.Errorf("result = %q, want %q", result, "ok")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestExecutor_TimeoutOnly(t *testing.T) {
	e := NewExecutor(WithTimeout(10 * time.Millisecond))

	_, err := e.Execute(context.Background(), func(ctx context.Context) ([]byte, error) {
		select {
		case <-time.After(time.Second):
			return []byte("too late"), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Execute error = %v, want %v", err, ErrTimeout)
	}
}

func TestExecutor_TimeoutBoundsEachAttempt(t *testing.T) {
	e := NewExecutor(
		WithRetry(NewRetry(RetryConfig{
			MaxAttempts:  2,
			InitialDelay: time.Millisecond,
			Strategy:     BackoffConstant,
			Jitter:       false,
		})),
		WithTimeout(20*time.Millisecond),
	)

	var calls atomic.Int32
	result, err := e.Execute(context.Background(), func(ctx context.Context) ([]byte, error) {
		if calls.Add(1) == 1 {
			// First attempt hangs past the per-attempt deadline.
			select {
			case <-time.After(time.Second):
				return nil, errors.New("unreachable")
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		return []byte("second try"), nil
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !bytes.Equal(result, []byte("second try")) {
		t.Errorf("result = %q, want %q", result, "second try")
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2 (timed-out attempt retried)", calls.Load())
	}
}

func TestExecutor_WrapComposes(t *testing.T) {
	e := NewExecutor(
		WithRetry(NewRetry(RetryConfig{
			MaxAttempts:  2,
			InitialDelay: time.Millisecond,
			Strategy:     BackoffConstant,
			Jitter:       false,
		})),
		WithTimeoutConfig(NewTimeout(TimeoutConfig{Timeout: time.Second})),
	)
	calls := 0

	op := e.Wrap(func(ctx context.Context) ([]byte, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return []byte("ok"), nil
	})

	result, err := op(context.Background())
	if err != nil {
		t.Fatalf("wrapped op failed: %v", err)
	}
	if !bytes.Equal(result, []byte("ok")) {
		t.Errorf("result = %q, want %q", result, "ok")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

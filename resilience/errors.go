package resilience

import "errors"

// Sentinel errors for resilience operations.
var (
	// ErrTimeout is returned when an operation times out.
	ErrTimeout = errors.New("resilience: operation timed out")

	// ErrNilOperation is returned when a nil operation is executed.
	ErrNilOperation = errors.New("resilience: operation is nil")
)

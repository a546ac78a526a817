package health

import "errors"

var (
	// ErrCheckFailed indicates a health check failed.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrNilStore indicates a checker was created without a store.
	ErrNilStore = errors.New("health: store is nil")
)

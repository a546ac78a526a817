package cache

import (
	"errors"
	"strings"
)

// MaxKeyLength is the maximum allowed length for a cache key.
const MaxKeyLength = 512

// Sentinel errors for cache operations.
var (
	ErrNilStore        = errors.New("cache: store is nil")
	ErrNilCompute      = errors.New("cache: compute function is nil")
	ErrInvalidKey      = errors.New("cache: key is invalid")
	ErrKeyTooLong      = errors.New("cache: key exceeds max length")
	ErrInvalidCapacity = errors.New("cache: capacity must be positive")
)

// Store is a bounded mapping from cache keys to computed results,
// ordered by recency of use.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Recency: Get refreshes recency for the key; Contains does not.
// - Errors: probe and insert are infallible; Get returns (nil, false) on miss.
// - Transparency: Get must return exactly the bytes previously passed
//   to Put for the key, and stored values must never be mutated in
//   place, only replaced wholesale.
type Store interface {
	// Get retrieves a cached value. Returns (nil, false) on miss.
	Get(key string) ([]byte, bool)

	// Put stores a value, replacing any existing entry for the key.
	// Reports whether the insert evicted another entry.
	Put(key string, value []byte) bool

	// Contains reports whether the key is present without refreshing recency.
	Contains(key string) bool

	// Remove removes a cached value. Reports whether the key was present.
	Remove(key string) bool

	// Len returns the number of entries currently stored.
	Len() int

	// Cap returns the configured capacity.
	Cap() int

	// Purge removes all entries.
	Purge()
}

// ValidateKey checks if a key is valid for caching.
func ValidateKey(key string) error {
	if key == "" || strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	// Reject keys with newlines or carriage returns
	if strings.ContainsAny(key, "\n\r") {
		return ErrInvalidKey
	}
	return nil
}

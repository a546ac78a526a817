package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Keyer derives deterministic cache keys from query requests.
//
// Contract:
// - Determinism: the same (sql, command) pair must produce the same key.
// - Totality: derivation must succeed for any input; there is no error channel.
// - Concurrency: implementations must be safe for concurrent use.
type Keyer interface {
	// Key derives a cache key from the query text and command kind.
	Key(sql, command string) string
}

// DeriveKey derives a content-addressed cache key for a query.
// Format: <hash>.<command>
// where hash is the lowercase hex SHA-256 of sql's bytes followed by
// command's bytes. The digest already covers command; the plain-text
// suffix keeps cache logs greppable by command kind.
func DeriveKey(sql, command string) string {
	h := sha256.New()
	h.Write([]byte(sql))
	h.Write([]byte(command))
	return hex.EncodeToString(h.Sum(nil)) + "." + command
}

// DefaultKeyer derives SHA-256 content-addressed keys via DeriveKey.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a new default keyer.
func NewDefaultKeyer() *DefaultKeyer {
	return &DefaultKeyer{}
}

// Key derives the cache key for a query. See DeriveKey for the format.
func (k *DefaultKeyer) Key(sql, command string) string {
	return DeriveKey(sql, command)
}

// Ensure DefaultKeyer implements Keyer
var _ Keyer = (*DefaultKeyer)(nil)

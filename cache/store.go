package cache

import (
	"bytes"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// LRUStore is a capacity-bounded Store with least-recently-used
// eviction. An explicit mutex guards the underlying LRU; critical
// sections are limited to individual probe/insert operations, so the
// store is never held locked across a compute.
//
// Values are copied on Put and again on Get: callers never alias the
// stored bytes, and an entry is only ever replaced wholesale.
type LRUStore struct {
	mu       sync.Mutex
	lru      *simplelru.LRU[string, []byte]
	capacity int
	stats    Stats
}

// NewLRUStore creates an LRUStore holding at most capacity entries.
func NewLRUStore(capacity int) (*LRUStore, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	lru, err := simplelru.NewLRU[string, []byte](capacity, nil)
	if err != nil {
		return nil, err
	}
	return &LRUStore{lru: lru, capacity: capacity}, nil
}

// Get retrieves a copy of the cached value, refreshing its recency.
// Returns (nil, false) on miss.
func (s *LRUStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	val, ok := s.lru.Get(key)
	if ok {
		s.stats.Hits++
	} else {
		s.stats.Misses++
	}
	s.mu.Unlock()

	if !ok {
		return nil, false
	}
	return bytes.Clone(val), true
}

// Put stores a copy of value, replacing any existing entry for the key
// and evicting the least-recently-used entry when at capacity.
// Reports whether an eviction occurred.
func (s *LRUStore) Put(key string, value []byte) bool {
	val := bytes.Clone(value)

	s.mu.Lock()
	evicted := s.lru.Add(key, val)
	if evicted {
		s.stats.Evictions++
	}
	s.mu.Unlock()

	return evicted
}

// Contains reports whether the key is present without refreshing recency.
func (s *LRUStore) Contains(key string) bool {
	s.mu.Lock()
	ok := s.lru.Contains(key)
	s.mu.Unlock()
	return ok
}

// Remove removes the entry for the key. Reports whether it was present.
func (s *LRUStore) Remove(key string) bool {
	s.mu.Lock()
	ok := s.lru.Remove(key)
	s.mu.Unlock()
	return ok
}

// Len returns the number of entries currently stored.
func (s *LRUStore) Len() int {
	s.mu.Lock()
	n := s.lru.Len()
	s.mu.Unlock()
	return n
}

// Cap returns the configured capacity.
func (s *LRUStore) Cap() int {
	return s.capacity
}

// Purge removes all entries. Counters are left untouched.
func (s *LRUStore) Purge() {
	s.mu.Lock()
	s.lru.Purge()
	s.mu.Unlock()
}

// Stats returns a snapshot of the store's performance counters.
func (s *LRUStore) Stats() Stats {
	s.mu.Lock()
	st := s.stats
	s.mu.Unlock()
	return st
}

// Ensure LRUStore implements Store
var _ Store = (*LRUStore)(nil)

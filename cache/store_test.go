package cache

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"
)

func newTestStore(t *testing.T, capacity int) *LRUStore {
	t.Helper()
	store, err := NewLRUStore(capacity)
	if err != nil {
		t.Fatalf("NewLRUStore(%d) error = %v", capacity, err)
	}
	return store
}

func TestLRUStore_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := NewLRUStore(capacity)
		if !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("NewLRUStore(%d) error = %v, want ErrInvalidCapacity", capacity, err)
		}
	}
}

func TestLRUStore_GetPutRemove(t *testing.T) {
	store := newTestStore(t, 4)

	// Miss on empty store
	val, ok := store.Get("missing")
	if ok {
		t.Error("Get on empty store should return ok=false")
	}
	if val != nil {
		t.Error("Get on empty store should return nil value")
	}

	// Put then Get
	evicted := store.Put("k1", []byte("v1"))
	if evicted {
		t.Error("Put below capacity should not evict")
	}
	got, ok := store.Get("k1")
	if !ok {
		t.Error("Get after Put should return ok=true")
	}
	if !bytes.Equal(got, []byte("v1")) {
		t.Errorf("Get returned %q, want %q", got, "v1")
	}

	// Remove
	if !store.Remove("k1") {
		t.Error("Remove of present key should report true")
	}
	if _, ok := store.Get("k1"); ok {
		t.Error("Get after Remove should return ok=false")
	}
	if store.Remove("k1") {
		t.Error("Remove of absent key should report false")
	}
}

func TestLRUStore_Eviction(t *testing.T) {
	store := newTestStore(t, 2)

	store.Put("k1", []byte("v1"))
	store.Put("k2", []byte("v2"))

	evicted := store.Put("k3", []byte("v3"))
	if !evicted {
		t.Error("Put at capacity should report eviction")
	}
	if store.Len() != 2 {
		t.Errorf("Len = %d, want 2", store.Len())
	}
	if store.Contains("k1") {
		t.Error("Least-recently-used key should have been evicted")
	}
	if !store.Contains("k2") || !store.Contains("k3") {
		t.Error("Recently used keys should survive eviction")
	}
}

func TestLRUStore_GetRefreshesRecency(t *testing.T) {
	store := newTestStore(t, 2)

	store.Put("k1", []byte("v1"))
	store.Put("k2", []byte("v2"))

	// Refresh k1; k2 becomes the eviction candidate.
	if _, ok := store.Get("k1"); !ok {
		t.Fatal("Get(k1) should hit")
	}

	store.Put("k3", []byte("v3"))

	if !store.Contains("k1") {
		t.Error("Refreshed key should survive eviction")
	}
	if store.Contains("k2") {
		t.Error("Stale key should have been evicted")
	}
}

func TestLRUStore_ContainsDoesNotRefresh(t *testing.T) {
	store := newTestStore(t, 2)

	store.Put("k1", []byte("v1"))
	store.Put("k2", []byte("v2"))

	// Contains must not count as use.
	store.Contains("k1")
	store.Put("k3", []byte("v3"))

	if store.Contains("k1") {
		t.Error("Contains should not refresh recency")
	}
}

func TestLRUStore_ReplaceWholesale(t *testing.T) {
	store := newTestStore(t, 2)

	store.Put("k1", []byte("old"))
	evicted := store.Put("k1", []byte("new"))
	if evicted {
		t.Error("Replacing an entry should not evict")
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}

	got, _ := store.Get("k1")
	if !bytes.Equal(got, []byte("new")) {
		t.Errorf("Get returned %q, want %q", got, "new")
	}
}

func TestLRUStore_CopyOnPut(t *testing.T) {
	store := newTestStore(t, 2)

	val := []byte("immutable")
	store.Put("k1", val)

	// Mutating the caller's slice must not reach the store.
	val[0] = 'X'

	got, _ := store.Get("k1")
	if !bytes.Equal(got, []byte("immutable")) {
		t.Errorf("Stored value was aliased by caller's slice: %q", got)
	}
}

func TestLRUStore_CopyOnGet(t *testing.T) {
	store := newTestStore(t, 2)

	store.Put("k1", []byte("immutable"))

	got, _ := store.Get("k1")
	got[0] = 'X'

	again, _ := store.Get("k1")
	if !bytes.Equal(again, []byte("immutable")) {
		t.Errorf("Stored value was mutated through Get result: %q", again)
	}
}

func TestLRUStore_Purge(t *testing.T) {
	store := newTestStore(t, 4)

	store.Put("k1", []byte("v1"))
	store.Put("k2", []byte("v2"))
	store.Purge()

	if store.Len() != 0 {
		t.Errorf("Len after Purge = %d, want 0", store.Len())
	}
	if store.Cap() != 4 {
		t.Errorf("Cap after Purge = %d, want 4", store.Cap())
	}
}

func TestLRUStore_Stats(t *testing.T) {
	store := newTestStore(t, 2)

	store.Get("missing")
	store.Put("k1", []byte("v1"))
	store.Get("k1")
	store.Get("k1")
	store.Put("k2", []byte("v2"))
	store.Put("k3", []byte("v3")) // evicts k1

	stats := store.Stats()
	if stats.Hits != 2 {
		t.Errorf("Hits = %d, want 2", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if stats.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", stats.Evictions)
	}
	if stats.Lookups() != 3 {
		t.Errorf("Lookups = %d, want 3", stats.Lookups())
	}

	want := 2.0 / 3.0
	if ratio := stats.HitRatio(); ratio < want-1e-9 || ratio > want+1e-9 {
		t.Errorf("HitRatio = %f, want %f", ratio, want)
	}
}

func TestStats_HitRatioEmpty(t *testing.T) {
	var stats Stats
	if ratio := stats.HitRatio(); ratio != 0 {
		t.Errorf("HitRatio on zero stats = %f, want 0", ratio)
	}
}

func TestLRUStore_ConcurrentAccess(t *testing.T) {
	store := newTestStore(t, 64)

	const numGoroutines = 50
	const opsPerGoroutine = 500

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < opsPerGoroutine; j++ {
				key := fmt.Sprintf("key-%d", j%100)
				switch j % 3 {
				case 0:
					store.Put(key, []byte("value"))
				case 1:
					store.Get(key)
				case 2:
					store.Remove(key)
				}
			}
		}(i)
	}

	wg.Wait()

	if store.Len() > store.Cap() {
		t.Errorf("Len %d exceeds Cap %d", store.Len(), store.Cap())
	}
}

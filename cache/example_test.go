package cache_test

import (
	"context"
	"fmt"

	"github.com/jonwraymond/querycache/cache"
)

func ExampleDeriveKey() {
	key := cache.DeriveKey("SELECT 1", "exec")

	// 64 hex characters, then the command as a readable suffix.
	fmt.Println("length:", len(key))
	fmt.Println("suffix:", key[64:])
	// Output:
	// length: 69
	// suffix: .exec
}

func ExampleRetrieve() {
	store, _ := cache.NewLRUStore(128)
	ctx := context.Background()

	computeCalls := 0
	compute := func(ctx context.Context) ([]byte, error) {
		computeCalls++
		return []byte("42 rows"), nil
	}

	// First call - cache miss, compute runs
	result, _ := cache.Retrieve(ctx, store, "SELECT * FROM flights", "exec", true, compute)
	fmt.Println("Result:", string(result))
	fmt.Println("Compute calls after 1:", computeCalls)

	// Second call - cache hit, compute skipped
	result, _ = cache.Retrieve(ctx, store, "SELECT * FROM flights", "exec", true, compute)
	fmt.Println("Result:", string(result))
	fmt.Println("Compute calls after 2:", computeCalls)
	// Output:
	// Result: 42 rows
	// Compute calls after 1: 1
	// Result: 42 rows
	// Compute calls after 2: 1
}

func ExampleRetrieve_noPersist() {
	store, _ := cache.NewLRUStore(128)
	ctx := context.Background()

	compute := func(ctx context.Context) ([]byte, error) {
		return []byte("one-off"), nil
	}

	// persist=false returns the result without writing it back.
	result, _ := cache.Retrieve(ctx, store, "SELECT now()", "json", false, compute)
	fmt.Println("Result:", string(result))
	fmt.Println("Stored entries:", store.Len())
	// Output:
	// Result: one-off
	// Stored entries: 0
}

func ExampleNewLRUStore() {
	store, _ := cache.NewLRUStore(2)

	store.Put("k1", []byte("v1"))
	store.Put("k2", []byte("v2"))
	store.Put("k3", []byte("v3")) // evicts k1

	fmt.Println("k1 present:", store.Contains("k1"))
	fmt.Println("k3 present:", store.Contains("k3"))
	fmt.Println("entries:", store.Len())
	// Output:
	// k1 present: false
	// k3 present: true
	// entries: 2
}

func ExampleNew() {
	store, _ := cache.NewLRUStore(128)
	r, _ := cache.New(store, cache.WithSingleFlight())

	ctx := context.Background()
	result, _ := r.Retrieve(ctx, "SELECT count(*) FROM t", "json", true, func(ctx context.Context) ([]byte, error) {
		return []byte(`{"count": 7}`), nil
	})

	fmt.Println("Result:", string(result))
	// Output:
	// Result: {"count": 7}
}

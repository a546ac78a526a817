package health_test

import (
	"context"
	"fmt"

	"github.com/jonwraymond/querycache/cache"
	"github.com/jonwraymond/querycache/health"
)

func ExampleNewStoreChecker() {
	store, _ := cache.NewLRUStore(100)
	store.Put("k1", []byte("v1"))

	checker := health.NewStoreChecker(store, health.StoreCheckerConfig{})
	result := checker.Check(context.Background())

	fmt.Println("status:", result.Status)
	fmt.Println("message:", result.Message)
	// Output:
	// status: healthy
	// message: store ok: 1/100 entries
}

func ExampleNewCheckerFunc() {
	checker := health.NewCheckerFunc("upstream", func(ctx context.Context) health.Result {
		return health.Healthy("reachable")
	})

	result := checker.Check(context.Background())
	fmt.Println(checker.Name(), "is", result.Status)
	// Output:
	// upstream is healthy
}

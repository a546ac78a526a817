package health

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/querycache/cache"
)

// StoreCheckerConfig configures the cache store health checker.
type StoreCheckerConfig struct {
	// UtilizationThreshold is the len/cap ratio that triggers degraded status.
	// Value should be between 0 and 1. Default: 0.9 (90%)
	UtilizationThreshold float64

	// HitRatioFloor is the hit ratio below which the store is reported
	// degraded. Zero disables the check.
	HitRatioFloor float64

	// MinLookups is the number of probes required before the hit ratio
	// check applies, so a cold store is not flagged. Default: 1000
	MinLookups uint64
}

// StatsSource is implemented by stores that expose performance counters.
type StatsSource interface {
	Stats() cache.Stats
}

// StoreChecker checks the health of a cache store.
type StoreChecker struct {
	store  cache.Store
	config StoreCheckerConfig
}

// NewStoreChecker creates a new store health checker.
func NewStoreChecker(store cache.Store, config StoreCheckerConfig) *StoreChecker {
	if config.UtilizationThreshold <= 0 || config.UtilizationThreshold > 1 {
		config.UtilizationThreshold = 0.9
	}
	if config.MinLookups == 0 {
		config.MinLookups = 1000
	}

	return &StoreChecker{store: store, config: config}
}

// Name returns the name of this checker.
func (c *StoreChecker) Name() string {
	return "cache-store"
}

// Check performs the store health check.
func (c *StoreChecker) Check(ctx context.Context) Result {
	start := time.Now()

	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	if c.store == nil {
		return Unhealthy("store not configured", ErrNilStore)
	}

	length := c.store.Len()
	capacity := c.store.Cap()
	utilization := float64(length) / float64(capacity)

	details := map[string]any{
		"len":         length,
		"cap":         capacity,
		"utilization": utilization,
	}

	var stats cache.Stats
	var hasStats bool
	if src, ok := c.store.(StatsSource); ok {
		stats = src.Stats()
		hasStats = true
		details["hits"] = stats.Hits
		details["misses"] = stats.Misses
		details["evictions"] = stats.Evictions
		details["hit_ratio"] = stats.HitRatio()
	}

	if utilization >= c.config.UtilizationThreshold {
		return Degraded(
			fmt.Sprintf("store near capacity: %.0f%%", utilization*100),
		).WithDetails(details).WithDuration(time.Since(start))
	}

	if hasStats && c.config.HitRatioFloor > 0 &&
		stats.Lookups() >= c.config.MinLookups &&
		stats.HitRatio() < c.config.HitRatioFloor {
		return Degraded(
			fmt.Sprintf("hit ratio low: %.2f", stats.HitRatio()),
		).WithDetails(details).WithDuration(time.Since(start))
	}

	return Healthy(
		fmt.Sprintf("store ok: %d/%d entries", length, capacity),
	).WithDetails(details).WithDuration(time.Since(start))
}

// Ensure StoreChecker implements Checker
var _ Checker = (*StoreChecker)(nil)

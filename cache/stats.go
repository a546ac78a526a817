package cache

// Stats is a snapshot of store performance counters.
//
// Counters are maintained under the store's lock and snapshotted by
// LRUStore.Stats. Hits and misses count probes; Evictions counts
// entries displaced by inserts at capacity (not Remove or Purge).
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Lookups returns the total number of probes.
func (s Stats) Lookups() uint64 {
	return s.Hits + s.Misses
}

// HitRatio returns Hits / (Hits + Misses), or 0 when nothing has been probed.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

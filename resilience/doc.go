// Package resilience provides retry and timeout wrappers for the
// compute functions callers hand to the cache layer. The cache itself
// never retries or times out a compute; these wrappers are composed
// around the compute path by the caller when the backing query engine
// warrants it.
package resilience

// Package cache provides memoizing caching for expensive query results.
//
// It derives content-addressed keys from (sql, command) pairs, keeps
// computed results in a bounded LRU store, and retrieves them through a
// probe, compute-on-miss, conditional write-back flow.
package cache

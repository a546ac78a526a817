// Package health provides health checking for cache stores: a small
// Checker contract plus a store checker that reports capacity pressure
// and hit-ratio degradation.
package health

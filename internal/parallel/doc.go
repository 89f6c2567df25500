// Package parallel provides the execution strategy shared by the sequential
// and parallel k-means modes.
//
// A Strategy is a "map over an index range, possibly in parallel" primitive.
// Work is re-partitioned on every call; there is no persistent worker pool.
// Each call returns only after all of its tasks have finished, which gives
// callers a full barrier between phases.
package parallel

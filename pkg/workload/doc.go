// Package workload generates reproducible streams of range-sum queries and
// element updates for benchmarking a range cache.
//
// The mix models a skewed read-heavy load: a small pool of hot ranges gets
// most queries, a few percent of operations overwrite a random element, and
// the rest are uniformly random ranges. The same seed always yields the same
// values and ops.
package workload

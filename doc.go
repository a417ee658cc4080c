// Package rangecache answers "sum of values[left..right]" queries over a
// mutable integer slice and memoizes the answers in a bounded LRU cache keyed
// by the query range.
//
// The package does not try to compute range sums quickly. It caches whatever
// the configured SumFunc returns (LinearSum by default) and keeps the cache
// consistent when the slice changes: Update writes the new element and drops
// every cached range that contains the written position.
//
// # Usage
//
//	values := []int64{1, 2, 3, 4, 5}
//
//	rc, err := rangecache.New[int64](1000)
//	if err != nil {
//		return err
//	}
//
//	sum, err := rc.RangeSum(values, 0, 2) // 6, computed and cached
//	sum, err = rc.RangeSum(values, 0, 2)  // 6, served from the cache
//
//	err = rc.Update(values, 1, 10) // values[1] = 10, drops [0, 2]
//	sum, err = rc.RangeSum(values, 0, 2) // 14, recomputed
//
// # Ownership
//
// A RangeCache is bound to one slice. Keys carry only the bounds, so passing
// a different slice, or writing to the slice without going through Update,
// returns stale sums.
//
// # Eviction and Invalidation
//
// The cache holds at most Cap ranges. A miss that would exceed the capacity
// evicts the least recently used range; hits refresh recency. Invalidation
// is a linear scan over the cached ranges, so Update costs O(Cap) regardless
// of the slice length.
//
// # Errors
//
// Bounds are validated on every call and never clamped:
//
//   - ErrInvalidRange: left > right, left < 0 or right >= len(values)
//   - ErrInvalidIndex: update index outside [0, len(values))
//   - ErrInvalidCapacity: New called with capacity <= 0
//   - ErrInvalidSumFunc: WithSumFunc given nil or a function for another element type
//
// # Concurrency
//
// RangeSum and Update are serialized by a single mutex, which makes the
// write-then-invalidate sequence of Update atomic with respect to the
// miss-then-store sequence of RangeSum.
//
// # Observability
//
// WithLogger enables debug logs for evictions and invalidations. WithObserver
// forwards per-operation events to an Observer such as the Prometheus
// implementation in pkg/metrics. Stats returns the counters at any time.
package rangecache

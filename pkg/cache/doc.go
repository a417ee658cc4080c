// Package cache provides a generic, thread-safe LRU (Least Recently Used) store
// with a fixed entry capacity.
//
// The store keeps its entries ordered by recency of use. Every Get or Put marks
// the touched key as most recently used; when a Put pushes the store past its
// capacity, exactly one entry is evicted: the least recently used one.
//
// # Key Features
//
//   - Generic over any comparable key type and any value type
//   - Lookups return (value, found), so no value is reserved to mean "missing"
//   - O(1) Get, Peek, Put and Remove
//   - Predicate removal (RemoveFunc) for invalidating a subset of entries
//   - Optional eviction callback for capacity evictions
//
// # Usage
//
//	store := cache.NewLRUCache[string, int](2)
//
//	store.Put("a", 1)
//	store.Put("b", 2)
//	store.Get("a")    // "a" becomes most recently used
//	store.Put("c", 3) // evicts "b"
//
//	if v, ok := store.Get("a"); ok {
//		// use v
//	}
//
//	// Drop every entry whose key matches.
//	removed := store.RemoveFunc(func(key string, _ int) bool {
//		return strings.HasPrefix(key, "a")
//	})
//
// # Eviction Callback
//
// SetEvictCallback registers a function that runs when an entry is evicted to
// make room for a new one. Remove, RemoveFunc and Clear are explicit requests
// from the owner and do not invoke it, which lets callers tell capacity pressure
// apart from invalidation:
//
//	store.SetEvictCallback(func(key string, value int) {
//		evictions.Inc()
//	})
//
// # Ordering
//
// Keys returns a snapshot ordered from least to most recently used. The
// snapshot is detached from the store and can be iterated while the store is
// modified.
//
// # Thread Safety
//
// All operations are guarded by a single mutex. Compound sequences built from
// several calls (get-then-put, for example) are not atomic; callers that need
// that must hold their own lock around the sequence.
package cache

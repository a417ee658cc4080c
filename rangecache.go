package rangecache

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/rangecache/pkg/cache"
	"github.com/dmitrymomot/rangecache/pkg/logger"
)

// RangeCache memoizes range sums over a single mutable slice.
//
// The slice is owned by the caller and passed to every call; the cache keys
// entries by bounds only, so one RangeCache must only ever be used with one
// slice, and that slice must only be modified through Update.
type RangeCache[T Integer] struct {
	mu       sync.Mutex
	store    *cache.LRUCache[Key, T]
	sum      SumFunc[T]
	log      *slog.Logger
	observer Observer
	stats    Stats
}

// New creates a RangeCache holding at most capacity range sums.
func New[T Integer](capacity int, opts ...Option) (*RangeCache[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	o := options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	var sum SumFunc[T] = LinearSum[T]
	if o.sum != nil {
		fn, ok := o.sum.(SumFunc[T])
		if !ok || fn == nil {
			return nil, fmt.Errorf("%w: want SumFunc[%T]", ErrInvalidSumFunc, *new(T))
		}
		sum = fn
	}

	c := &RangeCache[T]{
		store:    cache.NewLRUCache[Key, T](capacity),
		sum:      sum,
		log:      o.logger.With(logger.Component("rangecache")),
		observer: o.observer,
	}
	c.store.SetEvictCallback(c.onEvict)
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew[T Integer](capacity int, opts ...Option) *RangeCache[T] {
	c, err := New[T](capacity, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create range cache: %v", err))
	}
	return c
}

// RangeSum returns the sum of values[left..right], both ends inclusive.
// A cached answer is returned when present; otherwise the sum is computed
// and cached, which may evict the least recently used range.
func (c *RangeCache[T]) RangeSum(values []T, left, right int) (T, error) {
	if left < 0 || left > right || right >= len(values) {
		var zero T
		return zero, fmt.Errorf("%w: [%d, %d] over %d elements", ErrInvalidRange, left, right, len(values))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	start := c.now()
	key := Key{Left: left, Right: right}

	if sum, ok := c.store.Get(key); ok {
		c.stats.Hits++
		if c.observer != nil {
			c.observer.RecordQuery(true, time.Since(start))
		}
		return sum, nil
	}

	sum := c.sum(values, left, right)
	c.store.Put(key, sum)
	c.stats.Misses++
	if c.observer != nil {
		c.observer.RecordQuery(false, time.Since(start))
	}
	return sum, nil
}

// Update sets values[index] to value and drops every cached range that
// contains index. Ranges that do not contain index keep their cached sums.
func (c *RangeCache[T]) Update(values []T, index int, value T) error {
	if index < 0 || index >= len(values) {
		return fmt.Errorf("%w: %d over %d elements", ErrInvalidIndex, index, len(values))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	start := c.now()

	// The write and the invalidation happen under the same lock so that no
	// concurrent miss can cache a sum that misses the new value.
	values[index] = value
	n := c.store.RemoveFunc(func(k Key, _ T) bool {
		return k.Covers(index)
	})

	c.stats.Updates++
	c.stats.Invalidations += uint64(n)
	if n > 0 {
		c.log.Debug("invalidated cached ranges", logger.Index(index), logger.Count("invalidated", n))
	}
	if c.observer != nil {
		c.observer.RecordUpdate(n, time.Since(start))
	}
	return nil
}

// Cached returns the cached sum for [left, right] without refreshing its
// recency or computing anything.
func (c *RangeCache[T]) Cached(left, right int) (T, bool) {
	return c.store.Peek(Key{Left: left, Right: right})
}

// Keys returns the cached ranges, least recently used first.
func (c *RangeCache[T]) Keys() []Key {
	return c.store.Keys()
}

func (c *RangeCache[T]) Len() int {
	return c.store.Len()
}

func (c *RangeCache[T]) Cap() int {
	return c.store.Cap()
}

// Stats returns a snapshot of the cache counters.
func (c *RangeCache[T]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats
	s.Len = c.store.Len()
	s.Cap = c.store.Cap()
	return s
}

// Reset drops every cached range and zeroes the counters.
func (c *RangeCache[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Clear()
	c.stats = Stats{}
}

// Runs inside store.Put, so c.mu is already held.
func (c *RangeCache[T]) onEvict(key Key, _ T) {
	c.stats.Evictions++
	c.log.Debug("evicted cached range", logger.Range(key.Left, key.Right))
	if c.observer != nil {
		c.observer.RecordEviction()
	}
}

func (c *RangeCache[T]) now() time.Time {
	if c.observer == nil {
		return time.Time{}
	}
	return time.Now()
}

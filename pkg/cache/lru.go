package cache

import (
	"container/list"
	"sync"
)

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// LRUCache is a thread-safe bounded cache ordered by recency of use.
// When a Put pushes it past capacity, the least recently used entry is evicted.
type LRUCache[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	recency  *list.List // front = most recently used
	mu       sync.Mutex
	onEvict  func(key K, value V)
}

// NewLRUCache creates a new LRU cache with the specified capacity.
// The capacity must be positive, otherwise it panics.
func NewLRUCache[K comparable, V any](capacity int) *LRUCache[K, V] {
	if capacity <= 0 {
		panic("LRU cache capacity must be positive")
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		recency:  list.New(),
	}
}

// SetEvictCallback sets a function called whenever an entry is dropped
// to make room for a new one. Explicit removals do not trigger it.
func (c *LRUCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get retrieves a value from the cache and marks it as recently used.
// Returns the value and true if found, zero value and false otherwise.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.recency.MoveToFront(elem)
		return elem.Value.(*lruEntry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// Peek returns the value for key without touching its recency.
func (c *LRUCache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		return elem.Value.(*lruEntry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// Put adds or updates a value and marks it as most recently used.
// If the cache grows past capacity, the least recently used entry is evicted.
// Returns the previous value and true if the key already existed.
func (c *LRUCache[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.recency.MoveToFront(elem)
		entry := elem.Value.(*lruEntry[K, V])
		old := entry.value
		entry.value = value
		return old, true
	}

	elem := c.recency.PushFront(&lruEntry[K, V]{key: key, value: value})
	c.items[key] = elem

	if c.recency.Len() > c.capacity {
		c.evictOldest()
	}

	var zero V
	return zero, false
}

// Remove deletes key from the cache. Absent keys are ignored.
// Returns the removed value and true if it existed.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		entry := c.removeElement(elem)
		return entry.value, true
	}

	var zero V
	return zero, false
}

// RemoveFunc deletes every entry for which match returns true and reports
// how many were removed. Matching entries are collected before any removal,
// so match observes a consistent snapshot.
func (c *LRUCache[K, V]) RemoveFunc(match func(key K, value V) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var doomed []*list.Element
	for elem := c.recency.Front(); elem != nil; elem = elem.Next() {
		entry := elem.Value.(*lruEntry[K, V])
		if match(entry.key, entry.value) {
			doomed = append(doomed, elem)
		}
	}

	for _, elem := range doomed {
		c.removeElement(elem)
	}
	return len(doomed)
}

// Keys returns a snapshot of the cached keys, least recently used first.
func (c *LRUCache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.recency.Len())
	for elem := c.recency.Back(); elem != nil; elem = elem.Prev() {
		keys = append(keys, elem.Value.(*lruEntry[K, V]).key)
	}
	return keys
}

func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recency.Len()
}

func (c *LRUCache[K, V]) Cap() int {
	return c.capacity
}

// Clear removes all items from the cache without invoking the evict callback.
func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element, c.capacity)
	c.recency.Init()
}

// Must be called with lock held.
func (c *LRUCache[K, V]) evictOldest() {
	elem := c.recency.Back()
	if elem == nil {
		return
	}
	entry := c.removeElement(elem)
	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}

// Must be called with lock held.
func (c *LRUCache[K, V]) removeElement(elem *list.Element) *lruEntry[K, V] {
	c.recency.Remove(elem)
	entry := elem.Value.(*lruEntry[K, V])
	delete(c.items, entry.key)
	return entry
}

package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rangecache/pkg/cache"
)

type span struct{ l, r int }

func TestLRUCache_Basic(t *testing.T) {
	t.Run("put and get", func(t *testing.T) {
		c := cache.NewLRUCache[span, int](3)

		c.Put(span{0, 2}, 6)
		c.Put(span{3, 4}, 9)

		val, ok := c.Get(span{0, 2})
		assert.True(t, ok)
		assert.Equal(t, 6, val)

		val, ok = c.Get(span{3, 4})
		assert.True(t, ok)
		assert.Equal(t, 9, val)

		assert.Equal(t, 2, c.Len())
		assert.Equal(t, 3, c.Cap())
	})

	t.Run("miss is distinguishable from stored sentinel", func(t *testing.T) {
		c := cache.NewLRUCache[span, int](3)
		c.Put(span{0, 0}, -1)

		val, ok := c.Get(span{0, 0})
		assert.True(t, ok)
		assert.Equal(t, -1, val)

		val, ok = c.Get(span{1, 1})
		assert.False(t, ok)
		assert.Equal(t, 0, val)
	})

	t.Run("update existing", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](3)

		c.Put("a", 1)
		old, existed := c.Put("a", 2)
		assert.True(t, existed)
		assert.Equal(t, 1, old)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 2, val)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("miss has no side effect", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](2)
		c.Put("a", 1)
		c.Put("b", 2)

		_, ok := c.Get("zzz")
		assert.False(t, ok)
		assert.Equal(t, []string{"a", "b"}, c.Keys())
	})
}

func TestLRUCache_Eviction(t *testing.T) {
	t.Run("evict least recently used", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](3)
		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		c.Put("d", 4)

		_, ok := c.Peek("a")
		assert.False(t, ok, "a should have been evicted")
		assert.Equal(t, []string{"b", "c", "d"}, c.Keys())
		assert.Equal(t, 3, c.Len())
	})

	t.Run("get updates recency", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](3)
		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		c.Get("a")
		c.Put("d", 4)

		_, ok := c.Peek("b")
		assert.False(t, ok, "b should have been evicted")
		val, ok := c.Peek("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)
	})

	t.Run("put updates recency", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](3)
		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		c.Put("a", 10)
		c.Put("d", 4)

		_, ok := c.Peek("b")
		assert.False(t, ok, "b should have been evicted")
		val, ok := c.Peek("a")
		assert.True(t, ok)
		assert.Equal(t, 10, val)
	})

	t.Run("peek does not update recency", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](2)
		c.Put("a", 1)
		c.Put("b", 2)

		c.Peek("a")
		c.Put("c", 3)

		_, ok := c.Peek("a")
		assert.False(t, ok)
	})

	t.Run("size never exceeds capacity", func(t *testing.T) {
		c := cache.NewLRUCache[int, int](10)
		for i := range 1000 {
			c.Put(i, i)
			require.LessOrEqual(t, c.Len(), 10)
		}
		assert.Equal(t, []int{990, 991, 992, 993, 994, 995, 996, 997, 998, 999}, c.Keys())
	})
}

func TestLRUCache_EvictionCallback(t *testing.T) {
	c := cache.NewLRUCache[string, int](2)

	evicted := make(map[string]int)
	c.SetEvictCallback(func(key string, value int) {
		evicted[key] = value
	})

	c.Put("a", 1)
	c.Put("b", 2)

	c.Put("c", 3)
	assert.Equal(t, map[string]int{"a": 1}, evicted)

	c.Put("d", 4)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, evicted)

	// Explicit removals are not evictions.
	c.Remove("c")
	c.RemoveFunc(func(string, int) bool { return true })
	c.Put("x", 0)
	c.Clear()
	assert.Len(t, evicted, 2)
}

func TestLRUCache_Remove(t *testing.T) {
	c := cache.NewLRUCache[string, int](3)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	val, ok := c.Remove("b")
	assert.True(t, ok)
	assert.Equal(t, 2, val)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("b")
	assert.False(t, ok)

	val, ok = c.Remove("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, val)
}

func TestLRUCache_RemoveFunc(t *testing.T) {
	c := cache.NewLRUCache[span, int](5)
	c.Put(span{0, 2}, 6)
	c.Put(span{3, 4}, 9)
	c.Put(span{1, 3}, 9)
	c.Put(span{2, 2}, 3)

	covers := func(i int) func(span, int) bool {
		return func(k span, _ int) bool { return k.l <= i && i <= k.r }
	}

	n := c.RemoveFunc(covers(2))
	assert.Equal(t, 3, n)
	assert.Equal(t, []span{{3, 4}}, c.Keys())

	val, ok := c.Peek(span{3, 4})
	assert.True(t, ok)
	assert.Equal(t, 9, val)

	assert.Zero(t, c.RemoveFunc(covers(0)))
}

func TestLRUCache_Keys(t *testing.T) {
	c := cache.NewLRUCache[string, int](3)
	assert.Empty(t, c.Keys())

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	c.Get("a")

	keys := c.Keys()
	assert.Equal(t, []string{"b", "c", "a"}, keys)

	// Snapshot is detached from the store.
	c.Remove("c")
	assert.Equal(t, []string{"b", "c", "a"}, keys)
}

func TestLRUCache_Clear(t *testing.T) {
	c := cache.NewLRUCache[string, int](3)
	c.Put("a", 1)
	c.Put("b", 2)

	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Put("c", 3)
	assert.Equal(t, []string{"c"}, c.Keys())
}

func TestLRUCache_EdgeCases(t *testing.T) {
	t.Run("capacity of 1", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](1)
		c.Put("a", 1)
		c.Put("b", 2)

		_, ok := c.Get("a")
		assert.False(t, ok)
		val, ok := c.Get("b")
		assert.True(t, ok)
		assert.Equal(t, 2, val)
	})

	t.Run("panic on zero capacity", func(t *testing.T) {
		assert.Panics(t, func() {
			cache.NewLRUCache[string, int](0)
		})
	})

	t.Run("panic on negative capacity", func(t *testing.T) {
		assert.Panics(t, func() {
			cache.NewLRUCache[string, int](-1)
		})
	})
}

func TestLRUCache_Concurrent(t *testing.T) {
	c := cache.NewLRUCache[int, int](50)

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(3)
		go func(v int) {
			defer wg.Done()
			c.Put(v, v*2)
		}(i)
		go func(v int) {
			defer wg.Done()
			c.Get(v)
		}(i)
		go func(v int) {
			defer wg.Done()
			c.Remove(v / 2)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 50)
	assert.Len(t, c.Keys(), c.Len())
}

func BenchmarkLRUCache_Put(b *testing.B) {
	c := cache.NewLRUCache[int, int](1000)

	i := 0
	for b.Loop() {
		c.Put(i%2000, i)
		i++
	}
}

func BenchmarkLRUCache_Get(b *testing.B) {
	c := cache.NewLRUCache[int, int](1000)
	for i := range 1000 {
		c.Put(i, i)
	}

	i := 0
	for b.Loop() {
		c.Get(i % 1000)
		i++
	}
}

func BenchmarkLRUCache_RemoveFunc(b *testing.B) {
	c := cache.NewLRUCache[span, int](1000)

	i := 0
	for b.Loop() {
		for j := range 1000 {
			c.Put(span{j, j + 10}, j)
		}
		c.RemoveFunc(func(k span, _ int) bool { return k.l <= i%1000 && i%1000 <= k.r })
		i++
	}
}

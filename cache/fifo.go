// Package cache provides the generic memoization primitives used by the
// squircle geometry engine.
package cache

import (
	"sync"
	"sync/atomic"
)

// FIFO is a generic thread-safe cache with strict insertion-order
// eviction: when the cache is at capacity, inserting a new key evicts the
// single oldest-inserted entry still resident. Unlike an LRU, a cache hit
// never refreshes an entry's position, and re-inserting a resident key is
// a no-op eviction-wise.
//
// A capacity of 0 means unbounded.
//
// FIFO is safe for concurrent use and must not be copied after creation.
type FIFO[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*fifoEntry[K, V]
	order    fifoList[K]
	capacity int

	// Statistics (atomic for zero-allocation reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// fifoEntry holds a cached value with its position in the insertion list.
type fifoEntry[K comparable, V any] struct {
	value V
	node  *fifoNode[K]
}

// NewFIFO creates a FIFO cache with the given capacity.
// A capacity of 0 (or below) creates an unbounded cache.
func NewFIFO[K comparable, V any](capacity int) *FIFO[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &FIFO[K, V]{
		entries:  make(map[K]*fifoEntry[K, V]),
		capacity: capacity,
	}
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *FIFO[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	value := entry.value
	c.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Set stores a value in the cache. Inserting a new key while at capacity
// evicts the oldest-inserted entry. Setting a resident key replaces its
// value in place without touching the insertion order.
//
// The value is stored as-is (not copied). Callers must not modify it
// after caching.
func (c *FIFO[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		existing.value = value
		return
	}
	c.insert(key, value)
}

// GetOrCreate returns the cached value for key, computing and caching it
// with create on a miss. The create function runs with the cache lock
// held so a value is computed at most once per key; keep it fast.
func (c *FIFO[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.hits.Add(1)
		return entry.value
	}

	c.misses.Add(1)
	value := create()
	c.insert(key, value)
	return value
}

// insert adds a new entry, evicting the oldest if needed.
// Caller must hold c.mu and have checked the key is not resident.
func (c *FIFO[K, V]) insert(key K, value V) {
	if c.capacity > 0 {
		for c.order.Len() >= c.capacity {
			oldest, ok := c.order.RemoveOldest()
			if !ok {
				break
			}
			delete(c.entries, oldest)
			c.evictions.Add(1)
		}
	}
	node := c.order.PushBack(key)
	c.entries[key] = &fifoEntry[K, V]{value: value, node: node}
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *FIFO[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.Remove(entry.node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries from the cache.
func (c *FIFO[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*fifoEntry[K, V])
	c.order.Clear()
}

// Len returns the number of entries in the cache.
func (c *FIFO[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the cache capacity (0 = unbounded).
func (c *FIFO[K, V]) Capacity() int {
	return c.capacity
}

// Oldest returns the key next in line for eviction.
// Returns the zero key and false if the cache is empty.
func (c *FIFO[K, V]) Oldest() (K, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Oldest()
}

// Stats returns current cache statistics.
func (c *FIFO[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	evictions := c.evictions.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: evictions,
	}
}

// ResetStats resets all statistics counters to zero.
func (c *FIFO[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the cache capacity (0 = unbounded).
	Capacity int
	// Hits is the number of cache hits.
	Hits uint64
	// Misses is the number of cache misses.
	Misses uint64
	// HitRate is the cache hit rate 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of evicted entries.
	Evictions uint64
}

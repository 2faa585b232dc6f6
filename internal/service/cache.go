// Package service contains the business logic for the quote service.
package service

import (
	"sync"
	"time"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/metrics"
	"github.com/guttosm/quote-service/internal/service/cache"
)

// ttlCache provides thread-safe LRU caching with TTL expiration for quotes.
// It implements the cache.Cache interface. A background janitor evicts
// expired entries so the map does not grow past capacity between reads.
type ttlCache struct {
	mu        sync.RWMutex
	capacity  int
	ttl       time.Duration
	items     map[string]*cacheEntry
	head      *cacheEntry
	tail      *cacheEntry
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
}

// cacheEntry is a node in the LRU list.
type cacheEntry struct {
	key       string
	value     model.Quote
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// newTTLCache creates a ttlCache with the given capacity and TTL.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}

	go c.janitor()

	return c
}

// Get returns the cached quote for key if present and not expired.
func (c *ttlCache) Get(key string) (model.Quote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		c.misses++
		metrics.RecordCacheOperation("get", "miss")
		return model.Quote{}, false
	}

	if time.Now().After(entry.expiresAt) {
		c.removeLocked(entry)
		c.misses++
		metrics.RecordCacheOperation("get", "expired")
		return model.Quote{}, false
	}

	c.moveToFrontLocked(entry)
	c.hits++
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set stores a quote, evicting the least recently used entry at capacity.
func (c *ttlCache) Set(key string, value model.Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFrontLocked(entry)
		metrics.RecordCacheOperation("set", "update")
		return
	}

	if len(c.items) >= c.capacity && c.tail != nil {
		c.removeLocked(c.tail)
		c.evictions++
		metrics.RecordCacheOperation("set", "evict")
	}

	entry := &cacheEntry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = entry
	c.pushFrontLocked(entry)
	metrics.RecordCacheOperation("set", "insert")
	metrics.UpdateCacheMetrics(len(c.items), c.capacity)
}

// Invalidate removes a single key.
func (c *ttlCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeLocked(entry)
	}
}

// Clear removes all entries.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*cacheEntry, c.capacity)
	c.head = nil
	c.tail = nil
	metrics.UpdateCacheMetrics(0, c.capacity)
}

// Stop terminates the janitor goroutine.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// Metrics returns current cache metrics.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cache.Metrics{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// janitor periodically removes expired entries.
func (c *ttlCache) janitor() {
	interval := c.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.evictExpired()
		case <-c.stopCh:
			return
		}
	}
}

// evictExpired removes all entries past their expiration.
func (c *ttlCache) evictExpired() {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.removeLocked(entry)
			c.evictions++
		}
	}
	metrics.UpdateCacheMetrics(len(c.items), c.capacity)
}

// pushFrontLocked inserts entry at the head. Caller holds the lock.
func (c *ttlCache) pushFrontLocked(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

// moveToFrontLocked promotes entry to most recently used. Caller holds the lock.
func (c *ttlCache) moveToFrontLocked(entry *cacheEntry) {
	if c.head == entry {
		return
	}
	c.unlinkLocked(entry)
	c.pushFrontLocked(entry)
}

// removeLocked deletes entry from the list and map. Caller holds the lock.
func (c *ttlCache) removeLocked(entry *cacheEntry) {
	c.unlinkLocked(entry)
	delete(c.items, entry.key)
}

// unlinkLocked detaches entry from the list. Caller holds the lock.
func (c *ttlCache) unlinkLocked(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else if c.head == entry {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else if c.tail == entry {
		c.tail = entry.prev
	}
	entry.prev = nil
	entry.next = nil
}

package server

import (
	"slices"
	"sync"

	"github.com/bastiangx/spellophone/pkg/phoneword"
	"github.com/charmbracelet/log"
)

// ResultCache keeps the decompositions of recently requested numbers,
// evicting the least recently used entry when full.
type ResultCache struct {
	results     map[string][]phoneword.Entry
	accessTime  map[string]int64
	accessCount int64
	hits        int
	misses      int
	maxEntries  int
	mu          sync.Mutex
}

// NewResultCache creates a cache holding up to maxEntries numbers. A size of
// zero or less disables caching.
func NewResultCache(maxEntries int) *ResultCache {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &ResultCache{
		results:    make(map[string][]phoneword.Entry, maxEntries),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// cacheKey identifies a result by layout, number and order.
func cacheKey(keys, number string, order phoneword.Order) string {
	if order == phoneword.Ascending {
		return keys + "|" + number + "|a"
	}
	return keys + "|" + number + "|d"
}

// Get returns a copy of the cached entries for key.
func (c *ResultCache) Get(key string) ([]phoneword.Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, ok := c.results[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.accessTime[key] = c.nextAccessTime()
	return slices.Clone(entries), true
}

// Put stores entries under key.
func (c *ResultCache) Put(key string, entries []phoneword.Entry) {
	if c.maxEntries == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.results[key]; !ok && len(c.results) >= c.maxEntries {
		c.evictLRU()
	}
	c.results[key] = slices.Clone(entries)
	c.accessTime[key] = c.nextAccessTime()
}

// Len returns the number of cached results.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

// Stats returns the cache counters.
func (c *ResultCache) Stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return map[string]int{
		"entries":    len(c.results),
		"maxEntries": c.maxEntries,
		"hits":       c.hits,
		"misses":     c.misses,
	}
}

func (c *ResultCache) nextAccessTime() int64 {
	c.accessCount++
	return c.accessCount
}

func (c *ResultCache) evictLRU() {
	var oldestKey string
	var oldestTime int64 = 1<<63 - 1

	for key, t := range c.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldestKey = key
		}
	}

	if oldestKey != "" {
		delete(c.results, oldestKey)
		delete(c.accessTime, oldestKey)
		log.Debugf("Evicted '%s' from result cache", oldestKey)
	}
}

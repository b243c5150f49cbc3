// Package colour provides the bounded result cache used by the harmonizer.
package colour

import "time"

// DefaultCacheSize bounds the result cache when no size is configured.
const DefaultCacheSize = 32

// cacheKey identifies a harmonization result: the source colour, the active
// preset and the genre tag that shaped it.
type cacheKey struct {
	hex    string
	preset string
	genre  string
}

// String renders the key for result metadata.
func (k cacheKey) String() string {
	return k.hex + "|" + k.preset + "|" + k.genre
}

// cacheEntry is a computed enhanced colour plus its insertion time.
type cacheEntry struct {
	colour RGB
	at     time.Time
}

// resultCache is a bounded key→value store with insertion-order eviction.
// Eviction removes the oldest-inserted entry, not the least recently read,
// keeping both operations O(1). Not safe for concurrent use; the owning
// harmonizer is single-threaded by contract.
type resultCache struct {
	max     int
	entries map[cacheKey]cacheEntry
	order   []cacheKey
}

// newResultCache creates a cache bounded to max entries.
// A non-positive max falls back to DefaultCacheSize.
func newResultCache(max int) *resultCache {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &resultCache{
		max:     max,
		entries: make(map[cacheKey]cacheEntry, max),
	}
}

// get returns the cached colour for key, if present.
func (c *resultCache) get(key cacheKey) (RGB, bool) {
	entry, ok := c.entries[key]
	return entry.colour, ok
}

// put stores a colour under key, evicting the oldest-inserted entry when
// the cache is over capacity. Re-putting an existing key updates the value
// without disturbing the insertion order.
func (c *resultCache) put(key cacheKey, colour RGB) {
	if _, exists := c.entries[key]; exists {
		c.entries[key] = cacheEntry{colour: colour, at: time.Now()}
		return
	}

	c.entries[key] = cacheEntry{colour: colour, at: time.Now()}
	c.order = append(c.order, key)

	for len(c.entries) > c.max && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

// len returns the number of cached entries.
func (c *resultCache) len() int {
	return len(c.entries)
}

package font

import (
	"sort"
	"sync"
)

// Cache stores resolved handles keyed by (locator, size), with a soft entry
// limit. It is the explicit process-wide font cache: constructed by the
// caller (or defaulted by NewResolver), populated on first resolution, and
// effectively read-only afterwards. There is no invalidation; the host font
// set is assumed static during a session.
//
// Cache is safe for concurrent use and must not be copied after creation.
type Cache struct {
	mu        sync.Mutex
	entries   map[cacheKey]*cacheEntry
	softLimit int
	tick      int64 // Monotonic access counter
}

type cacheKey struct {
	locator string
	size    int
}

// cacheEntry holds a cached handle with its access time.
type cacheEntry struct {
	handle Handle
	atime  int64 // Access time (tick value)
}

// NewCache creates a cache with the given soft limit.
// A softLimit of 0 means unlimited.
func NewCache(softLimit int) *Cache {
	return &Cache{
		entries:   make(map[cacheKey]*cacheEntry),
		softLimit: softLimit,
	}
}

// Get retrieves a resolved handle.
// Returns (handle, true) if present, (nil, false) otherwise.
func (c *Cache) Get(locator string, size int) (Handle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[cacheKey{locator, size}]
	if !ok {
		return nil, false
	}

	c.tick++
	entry.atime = c.tick
	return entry.handle, true
}

// GetOrCreate returns the cached handle or resolves and stores a new one.
// create is called under the lock so the same (locator, size) pair never
// resolves twice.
func (c *Cache) GetOrCreate(locator string, size int, create func() Handle) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{locator, size}
	if entry, ok := c.entries[key]; ok {
		c.tick++
		entry.atime = c.tick
		return entry.handle
	}

	handle := create()

	c.tick++
	c.entries[key] = &cacheEntry{handle: handle, atime: c.tick}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return handle
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[cacheKey]*cacheEntry)
	c.tick = 0
}

// Len returns the number of entries in the cache.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// evictOldest removes least-recently-used entries until the cache is back
// under 3/4 of the soft limit. Caller must hold c.mu.
func (c *Cache) evictOldest() {
	targetSize := c.softLimit * 3 / 4
	if targetSize < 1 {
		targetSize = 1
	}
	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   cacheKey
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		all = append(all, aged{key: key, atime: e.atime})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].atime < all[j].atime })

	for i := 0; i < toEvict && i < len(all); i++ {
		delete(c.entries, all[i].key)
	}
}

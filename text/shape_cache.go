package text

import (
	"slices"
	"sync"

	"github.com/gogpu/richtext"
)

// shapeKey identifies a shaped run in a CachedShaper.
type shapeKey struct {
	text   string
	source *FontSource
	size   float64
	dir    Direction
	lang   string
}

type shapeEntry struct {
	chars []ShapedChar
	atime int64
}

// CachedShaper memoizes the results of another Shaper. When the number of
// runs exceeds the limit the least recently used quarter is evicted.
//
// CachedShaper is safe for concurrent use if the wrapped shaper is.
type CachedShaper struct {
	inner Shaper

	mu      sync.Mutex
	entries map[shapeKey]*shapeEntry
	limit   int
	tick    int64

	hits, misses uint64
}

// NewCachedShaper wraps inner with a shaping cache.
func NewCachedShaper(inner Shaper, opts ...CacheOption) *CachedShaper {
	config := defaultCacheConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if inner == nil {
		inner = &BuiltinShaper{}
	}
	return &CachedShaper{
		inner:   inner,
		entries: make(map[shapeKey]*shapeEntry),
		limit:   config.limit,
	}
}

// Shape implements the Shaper interface. The returned slice is a copy and
// may be modified by the caller.
func (c *CachedShaper) Shape(text string, face Face) []ShapedChar {
	if text == "" || face == nil {
		return nil
	}
	key := shapeKey{
		text:   text,
		source: face.Source(),
		size:   face.Size(),
		dir:    face.Direction(),
		lang:   string(face.Language()),
	}

	c.mu.Lock()
	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		c.hits++
		chars := slices.Clone(e.chars)
		c.mu.Unlock()
		return chars
	}
	c.misses++
	c.mu.Unlock()

	chars := c.inner.Shape(text, face)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.tick++
	c.entries[key] = &shapeEntry{chars: chars, atime: c.tick}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evictOldest()
	}
	return slices.Clone(chars)
}

// Len returns the number of cached runs.
func (c *CachedShaper) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the number of cache hits and misses.
func (c *CachedShaper) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Clear removes all cached runs.
func (c *CachedShaper) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[shapeKey]*shapeEntry)
	c.tick = 0
}

// evictOldest removes the oldest entries until 3/4 of the limit remain.
// Caller must hold c.mu.
func (c *CachedShaper) evictOldest() {
	target := max(c.limit*3/4, 1)
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}
	type aged struct {
		key   shapeKey
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, atime: e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int {
		switch {
		case a.atime < b.atime:
			return -1
		case a.atime > b.atime:
			return 1
		}
		return 0
	})
	for _, a := range all[:toEvict] {
		delete(c.entries, a.key)
	}
	richtext.Logger().Debug("text: shape cache eviction", "evicted", toEvict, "remaining", len(c.entries))
}

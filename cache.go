package skipscan

import (
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/mhr3/skipscan/search"
)

// cacheKey identifies a search. The pattern is kept verbatim; the text is
// represented by its digest and length.
type cacheKey struct {
	sum     uint64
	algo    search.Algorithm
	pattern string
	textLen int
}

func makeCacheKey(text, pattern string, algo search.Algorithm) cacheKey {
	d := xxhash.New()
	d.Write([]byte{byte(algo)})
	d.WriteString(pattern)
	d.Write([]byte{0})
	d.WriteString(text)
	return cacheKey{
		sum:     d.Sum64(),
		algo:    algo,
		pattern: pattern,
		textLen: len(text),
	}
}

// resultCache is a bounded FIFO cache of match positions.
type resultCache struct {
	mu      sync.Mutex
	entries map[cacheKey][]int
	ring    []cacheKey
	next    int
}

func newResultCache(capacity int) *resultCache {
	return &resultCache{
		entries: make(map[cacheKey][]int, capacity),
		ring:    make([]cacheKey, 0, capacity),
	}
}

// get returns a copy of the cached positions for k.
func (c *resultCache) get(k cacheKey) ([]int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pos, ok := c.entries[k]
	if !ok {
		return nil, false
	}
	return slices.Clone(pos), true
}

func (c *resultCache) put(k cacheKey, positions []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[k]; ok {
		c.entries[k] = slices.Clone(positions)
		return
	}
	if len(c.ring) < cap(c.ring) {
		c.ring = append(c.ring, k)
	} else {
		delete(c.entries, c.ring[c.next])
		c.ring[c.next] = k
		c.next = (c.next + 1) % len(c.ring)
	}
	c.entries[k] = slices.Clone(positions)
}

func (c *resultCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

package images

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"sync"
)

const maxCacheSize = 100

// urlCache remembers generated image URLs keyed by description, so
// repeated lessons reuse pictures instead of paying for regeneration.
// When full, the oldest entry is evicted.
type urlCache struct {
	mu      sync.Mutex
	entries map[string]string
	order   []string
}

func newURLCache() *urlCache {
	return &urlCache{entries: make(map[string]string)}
}

// cacheKey hashes the lowercased description, so capitalization
// variants of the same request share one entry.
func cacheKey(description string) string {
	sum := md5.Sum([]byte(strings.ToLower(description)))
	return hex.EncodeToString(sum[:])
}

func (c *urlCache) get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	url, ok := c.entries[key]
	return url, ok
}

func (c *urlCache) put(key, url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = url
		return
	}

	if len(c.entries) >= maxCacheSize {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = url
	c.order = append(c.order, key)
}

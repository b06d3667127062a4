package images

import (
	"fmt"
	"testing"
)

func TestCacheKey_IgnoresCase(t *testing.T) {
	if cacheKey("Three Apples") != cacheKey("three apples") {
		t.Error("keys should be case insensitive")
	}
	if cacheKey("apples") == cacheKey("bananas") {
		t.Error("different descriptions should have different keys")
	}
}

func TestURLCache_PutGet(t *testing.T) {
	c := newURLCache()

	key := cacheKey("3 apples")
	if _, ok := c.get(key); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	c.put(key, "https://img.example/apples.png")
	url, ok := c.get(key)
	if !ok || url != "https://img.example/apples.png" {
		t.Errorf("get = (%q, %v)", url, ok)
	}
}

func TestURLCache_EvictsOldestWhenFull(t *testing.T) {
	c := newURLCache()

	for i := 0; i < maxCacheSize; i++ {
		c.put(cacheKey(fmt.Sprintf("image %d", i)), "url")
	}

	// One more pushes out the very first entry.
	c.put(cacheKey("one more"), "url")

	if _, ok := c.get(cacheKey("image 0")); ok {
		t.Error("oldest entry should have been evicted")
	}
	if _, ok := c.get(cacheKey("image 1")); !ok {
		t.Error("second entry should survive")
	}
	if _, ok := c.get(cacheKey("one more")); !ok {
		t.Error("new entry should be present")
	}
}

func TestURLCache_OverwriteDoesNotEvict(t *testing.T) {
	c := newURLCache()

	key := cacheKey("apples")
	c.put(key, "old")
	c.put(key, "new")

	url, ok := c.get(key)
	if !ok || url != "new" {
		t.Errorf("get = (%q, %v), want (new, true)", url, ok)
	}
	if len(c.entries) != 1 || len(c.order) != 1 {
		t.Errorf("cache should hold one entry, has %d/%d", len(c.entries), len(c.order))
	}
}

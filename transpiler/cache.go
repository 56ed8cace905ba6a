package transpiler

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Key hashes source text for use as a cache key.
func Key(src string) string {
	sum := sha256.Sum256([]byte(src))
	return hex.EncodeToString(sum[:])
}

// Cache memoizes converted output by content hash. There is no invalidation
// policy beyond Clear.
type Cache struct {
	mu      sync.Mutex
	entries map[string]string
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]string)}
}

func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *Cache) Put(key, val string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = val
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string)
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Convert returns the cached output when the same source and format were
// converted before.
func (c *Cache) Convert(src string, f Format) (string, error) {
	key := Key(src) + ":" + string(f)
	if out, ok := c.Get(key); ok {
		return out, nil
	}
	out, err := Convert(src, f)
	if err != nil {
		return "", err
	}
	c.Put(key, out)
	return out, nil
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// entry is a cached summary with expiration
type entry struct {
	text      string
	expiresAt time.Time
}

// Cache keeps generated summaries in memory so re-analyzing identical text
// does not hit the summarization backend again.
type Cache struct {
	entries map[string]entry
	mutex   sync.Mutex
	ttl     time.Duration
}

// New creates a summary cache with the given entry lifetime.
func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Key derives a stable cache key from the cleaned message text.
func Key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Get retrieves a cached summary. Expired entries are removed on access.
func (c *Cache) Get(key string) (string, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	e, exists := c.entries[key]
	if !exists {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return "", false
	}
	return e.text, true
}

// Set stores a summary under the given key.
func (c *Cache) Set(key, text string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = entry{
		text:      text,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Len reports the number of cached entries, expired or not.
func (c *Cache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.entries)
}

// Clear removes all cached summaries.
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = make(map[string]entry)
}

package services

import (
	"sync"
	"time"

	"github.com/egorrya/pattaya-grad/models"
)

// LandingCacheTTL bounds how stale publicly served singleton content may be.
const LandingCacheTTL = 30 * time.Second

// ContentCache memoizes the singleton landing content for a fixed TTL.
// Writes invalidate it explicitly, so the staleness window only applies to
// out-of-band database changes. The clock is injected for tests.
type ContentCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	value     models.LandingContent
	expiresAt time.Time
	valid     bool
}

// NewContentCache creates a cache with the given TTL and clock.
func NewContentCache(ttl time.Duration, now func() time.Time) *ContentCache {
	if now == nil {
		now = time.Now
	}
	return &ContentCache{ttl: ttl, now: now}
}

// Get returns the cached content and whether it is still fresh.
func (c *ContentCache) Get() (models.LandingContent, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid || c.now().After(c.expiresAt) {
		return models.LandingContent{}, false
	}
	return c.value, true
}

// Set stores content and starts a new TTL window.
func (c *ContentCache) Set(value models.LandingContent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
	c.expiresAt = c.now().Add(c.ttl)
	c.valid = true
}

// Invalidate drops the cached value. Called on every content write.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}

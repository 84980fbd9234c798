package services

import (
	"testing"
	"time"

	"github.com/egorrya/pattaya-grad/models"
	"github.com/stretchr/testify/assert"
)

// fakeClock lets cache tests control time explicitly.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func TestContentCache(t *testing.T) {
	content := models.LandingContent{ID: models.LandingContentID, LandingFields: models.DefaultLandingFields()}

	t.Run("Empty cache misses", func(t *testing.T) {
		clock := &fakeClock{now: time.Now()}
		cache := NewContentCache(LandingCacheTTL, clock.Now)

		_, ok := cache.Get()
		assert.False(t, ok)
	})

	t.Run("Hit within TTL", func(t *testing.T) {
		clock := &fakeClock{now: time.Now()}
		cache := NewContentCache(LandingCacheTTL, clock.Now)

		cache.Set(content)
		clock.Advance(29 * time.Second)

		got, ok := cache.Get()
		assert.True(t, ok)
		assert.Equal(t, content.HeaderPhrase, got.HeaderPhrase)
	})

	t.Run("Miss after TTL", func(t *testing.T) {
		clock := &fakeClock{now: time.Now()}
		cache := NewContentCache(LandingCacheTTL, clock.Now)

		cache.Set(content)
		clock.Advance(31 * time.Second)

		_, ok := cache.Get()
		assert.False(t, ok)
	})

	t.Run("Invalidate drops the value immediately", func(t *testing.T) {
		clock := &fakeClock{now: time.Now()}
		cache := NewContentCache(LandingCacheTTL, clock.Now)

		cache.Set(content)
		cache.Invalidate()

		_, ok := cache.Get()
		assert.False(t, ok)
	})

	t.Run("Set restarts the TTL window", func(t *testing.T) {
		clock := &fakeClock{now: time.Now()}
		cache := NewContentCache(LandingCacheTTL, clock.Now)

		cache.Set(content)
		clock.Advance(25 * time.Second)
		cache.Set(content)
		clock.Advance(25 * time.Second)

		_, ok := cache.Get()
		assert.True(t, ok)
	})
}

func TestLandingServiceCacheInvalidationOnWrite(t *testing.T) {
	db := setupServiceTestDB(t)
	clock := &fakeClock{now: time.Now()}
	svc := NewLandingService(NewContentCache(LandingCacheTTL, clock.Now))

	// Prime the cache
	first, err := svc.GetContentCached(db)
	assert.NoError(t, err)

	// Write through the service; the next cached read must see it
	fields := first.LandingFields
	fields.HeaderPhrase = "Обновленный заголовок"
	_, err = svc.UpdateContent(db, fields)
	assert.NoError(t, err)

	got, err := svc.GetContentCached(db)
	assert.NoError(t, err)
	assert.Equal(t, "Обновленный заголовок", got.HeaderPhrase)
}

package tokencache

import (
	"sync"
	"testing"
	"time"

	coremocks "github.com/lunarbyte-dev/member-credits/mocks/port/core"
	"github.com/stretchr/testify/assert"
)

// movableClock is a settable clock for driving TTL expiry in tests
type movableClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *movableClock) get() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *movableClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newCacheWithClock(t *testing.T) (*Cache, *movableClock) {
	clock := &movableClock{now: time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)}

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().RunAndReturn(clock.get).Maybe()

	// Sweep interval is long enough to never fire during a test run
	cache := New(5*time.Minute, time.Hour, mockTime)
	t.Cleanup(cache.Stop)
	return cache, clock
}

func TestCachePutGet(t *testing.T) {
	cache, _ := newCacheWithClock(t)

	cache.Put("token-a", "admin")

	value, ok := cache.Get("token-a")
	assert.True(t, ok)
	assert.Equal(t, "admin", value)

	_, ok = cache.Get("missing")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	cache, clock := newCacheWithClock(t)

	cache.Put("token-a", "admin")

	clock.advance(5 * time.Minute)
	_, ok := cache.Get("token-a")
	assert.True(t, ok, "entry at exactly the TTL boundary is still live")

	clock.advance(time.Second)
	_, ok = cache.Get("token-a")
	assert.False(t, ok)
	// Lazy expiry also evicts the entry
	assert.Equal(t, 0, cache.Len())
}

func TestCacheDelete(t *testing.T) {
	cache, _ := newCacheWithClock(t)

	cache.Put("token-a", "admin")
	cache.Put("token-b", "admin")
	assert.Equal(t, 2, cache.Len())

	cache.Delete("token-a")
	assert.Equal(t, 1, cache.Len())

	_, ok := cache.Get("token-a")
	assert.False(t, ok)
	_, ok = cache.Get("token-b")
	assert.True(t, ok)
}

func TestCachePutRefreshesTTL(t *testing.T) {
	cache, clock := newCacheWithClock(t)

	cache.Put("token-a", "admin")
	clock.advance(4 * time.Minute)
	cache.Put("token-a", "admin")
	clock.advance(4 * time.Minute)

	_, ok := cache.Get("token-a")
	assert.True(t, ok)
}

func TestCacheStopIsIdempotent(t *testing.T) {
	cache, _ := newCacheWithClock(t)

	cache.Stop()
	cache.Stop()
}

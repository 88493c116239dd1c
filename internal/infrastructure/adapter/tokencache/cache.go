package tokencache

import (
	"sync"
	"time"

	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// Cache is an in-memory token store with per-entry TTL. A background sweep
// evicts expired entries so abandoned admin sessions do not accumulate.
type Cache struct {
	mu           sync.RWMutex
	entries      map[string]entry
	ttl          time.Duration
	timeProvider coreport.TimeProvider
	stop         chan struct{}
	stopOnce     sync.Once
}

// New creates a token cache and starts its sweep goroutine
func New(ttl, sweepInterval time.Duration, timeProvider coreport.TimeProvider) *Cache {
	c := &Cache{
		entries:      make(map[string]entry),
		ttl:          ttl,
		timeProvider: timeProvider,
		stop:         make(chan struct{}),
	}
	go c.sweep(sweepInterval)
	return c
}

// Put stores a token with the configured TTL
func (c *Cache) Put(token, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[token] = entry{
		value:     value,
		expiresAt: c.timeProvider.Now().Add(c.ttl),
	}
}

// Get returns the value for a token if it exists and has not expired
func (c *Cache) Get(token string) (string, bool) {
	c.mu.RLock()
	e, ok := c.entries[token]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	if c.timeProvider.Now().After(e.expiresAt) {
		c.Delete(token)
		return "", false
	}
	return e.value, true
}

// Delete removes a token
func (c *Cache) Delete(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, token)
}

// Len reports the number of stored entries, expired or not
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stop terminates the sweep goroutine. Safe to call more than once.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}

func (c *Cache) sweep(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			now := c.timeProvider.Now()
			c.mu.Lock()
			for token, e := range c.entries {
				if now.After(e.expiresAt) {
					delete(c.entries, token)
				}
			}
			c.mu.Unlock()
		}
	}
}

package client

import (
	"net/url"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Resource families used as cache keys and for invalidation.
const (
	ResourceBudgets       = "budgets"
	ResourceBudgetEntries = "budget-entries"
	ResourceCashRegisters = "cash-registers"
	ResourceCashEntries   = "cash-entries"
	ResourceBankAccounts  = "bank-accounts"
	ResourceCategories    = "categories"
	ResourceTags          = "tags"
	ResourceParties       = "parties"
	ResourceLookup        = "lookup"
)

// Cache stores raw responses keyed by resource family and request
// parameters. Concurrent requests for the same key are collapsed into a
// single HTTP call. Failed requests are not retried, the error surfaces
// to all waiters immediately.
type Cache struct {
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string][]byte
}

func newCache() *Cache {
	return &Cache{
		entries: make(map[string][]byte),
	}
}

func cacheKey(resource, path string, query url.Values) string {
	return resource + ":" + path + "?" + query.Encode()
}

func (c *Cache) fetch(key string, request func() ([]byte, error)) ([]byte, error) {
	c.mu.RLock()
	raw, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		return raw, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A waiter of a previous flight might have stored the
		// response already
		c.mu.RLock()
		raw, ok := c.entries[key]
		c.mu.RUnlock()

		if ok {
			return raw, nil
		}

		raw, err := request()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = raw
		c.mu.Unlock()

		return raw, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]byte), nil
}

// Invalidate discards all entries of the resource families passed.
func (c *Cache) Invalidate(resources ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		for _, resource := range resources {
			if strings.HasPrefix(key, resource+":") {
				delete(c.entries, key)
			}
		}
	}
}

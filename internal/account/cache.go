package account

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ReelCasino_Go/internal/domain"
)

// cachedAccountEntry wraps an account with version metadata for cache invalidation
type cachedAccountEntry struct {
	Version  string
	Account  domain.Account
	CachedAt time.Time
}

// accountCache is an expiring LRU of accounts keyed by id
type accountCache struct {
	lru *expirable.LRU[string, *cachedAccountEntry]
}

func newAccountCache(size int, ttl time.Duration) *accountCache {
	return &accountCache{
		lru: expirable.NewLRU[string, *cachedAccountEntry](size, nil, ttl),
	}
}

// Get returns a copy of the cached account. Entries from an older schema version are dropped.
func (c *accountCache) Get(id string) (*domain.Account, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		return nil, false
	}
	account := entry.Account
	return &account, true
}

func (c *accountCache) Set(account domain.Account) {
	c.lru.Add(account.ID, &cachedAccountEntry{
		Version:  CacheSchemaVersion,
		Account:  account,
		CachedAt: time.Now(),
	})
}

func (c *accountCache) Invalidate(id string) {
	c.lru.Remove(id)
}

func (c *accountCache) Clear() {
	c.lru.Purge()
}

package cache

import (
	"context"

	"github.com/bradfitz/gomemcache/memcache"
)

const (
	keyPrefix = "vc:list:"
	listTTL   = 600 // seconds
)

// ListCache is the shared read-through cache for collection listings,
// backed by memcached. A miss or a memcached outage both read as a cache
// miss; callers fall through to the database.
type ListCache struct {
	mc *memcache.Client
}

func NewListCache(mc *memcache.Client) *ListCache {
	return &ListCache{mc: mc}
}

func (c *ListCache) Get(ctx context.Context, key string) ([]byte, bool) {
	item, err := c.mc.Get(keyPrefix + key)
	if err != nil {
		return nil, false
	}
	return item.Value, true
}

func (c *ListCache) Set(ctx context.Context, key string, value []byte) {
	_ = c.mc.Set(&memcache.Item{
		Key:        keyPrefix + key,
		Value:      value,
		Expiration: listTTL,
	})
}

func (c *ListCache) Invalidate(ctx context.Context, key string) {
	err := c.mc.Delete(keyPrefix + key)
	if err != nil && err != memcache.ErrCacheMiss {
		// a failed invalidation would serve stale rows for up to the
		// TTL; nothing better to do than let the TTL expire it
		return
	}
}

package adapter

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/MKhiriev/go-sign-in/models"
)

type cachedConfigFetcher struct {
	next  ConfigFetcher
	cache *gocache.Cache
}

// NewCachedConfigFetcher wraps next with an in-memory TTL cache keyed by
// config name. Failed fetches are never cached. A non-positive ttl disables
// caching and returns next unchanged.
func NewCachedConfigFetcher(next ConfigFetcher, ttl time.Duration) ConfigFetcher {
	if ttl <= 0 {
		return next
	}
	return &cachedConfigFetcher{next: next, cache: gocache.New(ttl, 2*ttl)}
}

func (c *cachedConfigFetcher) Fetch(ctx context.Context, name string) (models.RemoteConfig, error) {
	if v, ok := c.cache.Get(name); ok {
		if cfg, ok := v.(models.RemoteConfig); ok {
			return cfg, nil
		}
	}

	cfg, err := c.next.Fetch(ctx, name)
	if err != nil {
		return models.RemoteConfig{}, err
	}

	c.cache.SetDefault(name, cfg)
	return cfg, nil
}

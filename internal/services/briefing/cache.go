package briefing

import (
	"context"
	"strings"
	"time"

	"ApexDesk/internal/domain/models"
	pkgcache "ApexDesk/pkg/cache"
)

// Keys embed the Paris date, so a day of retention is enough; stale keys
// are never read again and age out on their own.
const entryTTL = 24 * time.Hour

// DayCache stores generated briefings on a byte-level store. With the
// memory store it behaves like a process-local map; behind Redis the
// briefings survive restarts.
type DayCache struct {
	store pkgcache.Store
}

func NewDayCache(store pkgcache.Store) *DayCache {
	return &DayCache{store: store}
}

// CacheKey builds `YYYY-MM-DD_slot[_assets]` with the asset signature in
// request order.
func CacheKey(date, slot string, assets []string) string {
	key := date + "_" + slot
	if len(assets) > 0 {
		key += "_" + strings.Join(assets, ",")
	}
	return key
}

func (c *DayCache) Get(ctx context.Context, key string) (models.Briefing, bool) {
	var b models.Briefing
	if err := c.store.Get(ctx, pkgcache.Key("briefing", key), &b); err != nil {
		return nil, false
	}
	return b, true
}

// Set overwrites any previous entry for key. Store errors are swallowed:
// a briefing that fails to cache is still served.
func (c *DayCache) Set(ctx context.Context, key string, b models.Briefing) {
	_ = c.store.Set(ctx, pkgcache.Key("briefing", key), b, entryTTL)
}

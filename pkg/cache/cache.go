package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Store is the byte-level cache behind the snapshot and briefing layers.
// Values are JSON documents; callers own the (de)serialization of their
// domain types via Set/Get.
type Store interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}

// Key joins parts into a colon-separated cache key.
func Key(parts ...string) string {
	key := parts[0]
	for _, p := range parts[1:] {
		key = fmt.Sprintf("%s:%s", key, p)
	}
	return key
}

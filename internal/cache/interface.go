package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// CatalogKey is the cache entry for the unfiltered product listing. Filtered
// queries always go to the backend.
const CatalogKey = "catalog:all"

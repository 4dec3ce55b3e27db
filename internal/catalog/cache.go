package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Cache holds an immutable snapshot of the active product collection. The
// snapshot is built off to the side and swapped atomically, so request
// handlers never block on a refresh.
type Cache struct {
	store      Store
	fetchLimit int
	logger     zerolog.Logger

	snapshot atomic.Pointer[Snapshot]
}

// Snapshot is one immutable view of the catalog. Fallback marks snapshots
// built from the static dataset after a failed or empty fetch.
type Snapshot struct {
	Products []Product
	Fallback bool
	LoadedAt time.Time
}

// NewCache creates a cache over the store. The cache starts empty; call
// Refresh before serving.
func NewCache(store Store, fetchLimit int, logger zerolog.Logger) *Cache {
	c := &Cache{
		store:      store,
		fetchLimit: fetchLimit,
		logger:     logger.With().Str("component", "catalog_cache").Logger(),
	}
	c.snapshot.Store(&Snapshot{Products: []Product{}, Fallback: true})
	return c
}

// Refresh fetches the active collection and swaps in a new snapshot. A
// failed or empty fetch swaps in the fallback dataset instead; refresh
// never leaves the cache unusable and never returns an error to callers
// on the serving path.
func (c *Cache) Refresh(ctx context.Context) {
	products, err := c.store.FetchActive(ctx, c.fetchLimit)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Product fetch failed, serving fallback dataset")
		c.swapFallback()
		return
	}
	if len(products) == 0 {
		c.logger.Warn().Msg("Product fetch returned zero rows, serving fallback dataset")
		c.swapFallback()
		return
	}

	c.snapshot.Store(&Snapshot{Products: products, LoadedAt: time.Now()})
	c.logger.Info().Int("count", len(products)).Msg("Catalog snapshot refreshed")
}

func (c *Cache) swapFallback() {
	fallbackLoads.Inc()
	c.snapshot.Store(&Snapshot{
		Products: Fallback(),
		Fallback: true,
		LoadedAt: time.Now(),
	})
}

// Snapshot returns the current view. The returned slice must be treated as
// read-only.
func (c *Cache) Snapshot() *Snapshot {
	return c.snapshot.Load()
}

// StartRefreshLoop refreshes the snapshot on the given interval until the
// context is cancelled.
func (c *Cache) StartRefreshLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Refresh(ctx)
		}
	}
}

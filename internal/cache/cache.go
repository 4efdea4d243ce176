// Package cache is the read cache for API responses.
//
// Each key holds one decoded read result. Mutations drop keys by glob
// pattern, see Dependencies.
package cache

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"golang.org/x/sync/singleflight"
)

// Keys of the cached lists. Details use Key, e.g. Key(Debts, id.String()).
const (
	Accounts      = "accounts"
	Budgets       = "budgets"
	Cashflows     = "cashflows"
	Dashboard     = "dashboard"
	Debts         = "debts"
	EmergencyFund = "emergency-fund"
	Investments   = "investments"
	LiquidAssets  = "liquid-assets"
	NetWorth      = "net-worth"
	Settings      = "settings"
	Categories    = "lookup/categories"
	Types         = "lookup/types"
)

// Requests counts cache lookups by result.
var Requests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cache_requests_total",
		Help: "How many cache lookups were made, partitioned by result.",
	},
	[]string{"result"},
)

// Key joins parts to a cache key.
func Key(parts ...string) string {
	return strings.Join(parts, "/")
}

type Cache struct {
	mu         sync.RWMutex
	entries    map[string]any
	generation uint64
	group      singleflight.Group
	enabled    bool
}

// New returns an empty cache. A disabled cache fetches on every Load.
func New(enabled bool) *Cache {
	return &Cache{
		entries: map[string]any{},
		enabled: enabled,
	}
}

// Load returns the cached value for key or fetches it.
//
// Concurrent loads of the same key share one fetch, which is not
// cancelled when the caller that started it goes away. Errors are never
// cached. A value fetched while an invalidation happened is returned to
// its callers but not stored.
func Load[T any](ctx context.Context, c *Cache, key string, fetch func(context.Context) (T, error)) (T, error) {
	if c == nil || !c.enabled {
		Requests.WithLabelValues("bypass").Inc()
		return fetch(ctx)
	}

	c.mu.RLock()
	value, ok := c.entries[key]
	generation := c.generation
	c.mu.RUnlock()

	if cached, ok2 := value.(T); ok && ok2 {
		Requests.WithLabelValues("hit").Inc()
		return cached, nil
	}

	Requests.WithLabelValues("miss").Inc()

	// Callers after an invalidation must not join a fetch that started before it
	flight := key + "@" + strconv.FormatUint(generation, 10)

	// The shared fetch outlives the caller that started it, every caller
	// waits only as long as its own context allows
	result := c.group.DoChan(flight, func() (any, error) {
		fetched, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.generation == generation {
			c.entries[key] = fetched
		}
		c.mu.Unlock()

		return fetched, nil
	})

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-result:
		if r.Err != nil {
			var zero T
			return zero, r.Err
		}

		return r.Val.(T), nil
	}
}

// Invalidate drops all keys matching any of the glob patterns.
func (c *Cache) Invalidate(patterns ...string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++

	dropped := 0
	for key := range c.entries {
		for _, pattern := range patterns {
			if glob.Glob(pattern, key) {
				delete(c.entries, key)
				dropped++
				break
			}
		}
	}

	log.Debug().Strs("patterns", patterns).Int("dropped", dropped).Msg("Cache")
}

// Len returns the number of cached keys.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

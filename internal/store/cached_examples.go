package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"tokensmith.app/forge/internal/model"
)

// CachedGoldenExampleSource serves FindActive results from an expiring LRU.
// Admin writes call Purge so activations show up on the next prompt.
type CachedGoldenExampleSource struct {
	store GoldenExampleStore
	cache *expirable.LRU[string, []model.GoldenExample]
}

func NewCachedGoldenExampleSource(store GoldenExampleStore, size int, ttl time.Duration) *CachedGoldenExampleSource {
	if size <= 0 {
		size = 256
	}
	return &CachedGoldenExampleSource{
		store: store,
		cache: expirable.NewLRU[string, []model.GoldenExample](size, nil, ttl),
	}
}

func (c *CachedGoldenExampleSource) FindExamples(ctx context.Context, filter model.GoldenExampleFilter) ([]model.GoldenExample, error) {
	key := filterKey(filter)
	if examples, ok := c.cache.Get(key); ok {
		return slices.Clone(examples), nil
	}

	examples, err := c.store.FindActive(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("finding golden examples: %w", err)
	}
	c.cache.Add(key, examples)
	slog.DebugContext(ctx, "golden examples cached", "key", key, "count", len(examples))
	return slices.Clone(examples), nil
}

func (c *CachedGoldenExampleSource) Purge() {
	c.cache.Purge()
}

func filterKey(f model.GoldenExampleFilter) string {
	return fmt.Sprintf("%s|%s|%d", strings.ToLower(strings.TrimSpace(f.Industry)), f.ColorMood, f.Limit)
}

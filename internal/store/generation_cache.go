package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"tokensmith.app/forge/internal/model"
)

type redisGenerationCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisGenerationCache stores token trees as JSON strings under prefix.
// A zero ttl keeps entries until evicted.
func NewRedisGenerationCache(client *redis.Client, prefix string, ttl time.Duration) GenerationCache {
	return &redisGenerationCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *redisGenerationCache) Get(ctx context.Context, key string) (*model.BrandSystem, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading generation cache: %w", err)
	}

	var tokens model.BrandSystem
	if err := json.Unmarshal(data, &tokens); err != nil {
		// A corrupt entry is a miss; the next Set overwrites it.
		slog.WarnContext(ctx, "discarding unreadable generation cache entry", "key", key, "error", err)
		return nil, nil
	}
	return &tokens, nil
}

func (c *redisGenerationCache) Set(ctx context.Context, key string, tokens *model.BrandSystem) error {
	data, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("encoding tokens: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing generation cache: %w", err)
	}
	return nil
}

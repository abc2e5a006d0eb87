package confirmation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

const cacheKeyPrefix = "confirmation:"

// Cache stores generated texts by key.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// RedisCache is a Cache backed by Redis strings.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// CachedGenerator reuses the text generated for an identical prompt.
// Cache failures are logged and otherwise ignored.
type CachedGenerator struct {
	next   Generator
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedGenerator(next Generator, cache Cache, ttl time.Duration, logger *zap.Logger) *CachedGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedGenerator{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (g *CachedGenerator) Generate(ctx context.Context, lead domain.Lead) (string, error) {
	key := CacheKey(lead)

	if text, ok, err := g.cache.Get(ctx, key); err != nil {
		g.logger.Warn("confirmation cache read failed", zap.Error(err))
	} else if ok {
		return text, nil
	}

	text, err := g.next.Generate(ctx, lead)
	if err != nil {
		return "", err
	}

	if text != "" {
		if err := g.cache.Set(ctx, key, text, g.ttl); err != nil {
			g.logger.Warn("confirmation cache write failed", zap.Error(err))
		}
	}
	return text, nil
}

// CacheKey hashes the prompt built for lead.
func CacheKey(lead domain.Lead) string {
	sum := sha256.Sum256([]byte(BuildPrompt(lead)))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

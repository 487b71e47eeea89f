package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"shopscout-api/internal/config"
	"shopscout-api/internal/models"
)

// RedisCache stores search envelopes keyed by query and page. A nil *RedisCache
// is a valid no-op cache: every method guards against a nil receiver, so the
// service degrades cleanly when Redis is unreachable at startup.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewRedisCache(cfg *config.Config, log zerolog.Logger) *RedisCache {
	logger := log.With().Str("component", "redis_cache").Logger()

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to parse Redis URL, caching disabled")
		return nil
	}
	opt.DB = cfg.RedisDB

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn().Err(err).Msg("Redis connection failed, caching disabled")
		return nil
	}

	logger.Info().
		Int("db", cfg.RedisDB).
		Dur("ttl", cfg.CacheTTL).
		Msg("Redis connected")

	return &RedisCache{
		client: client,
		ttl:    cfg.CacheTTL,
		log:    logger,
	}
}

func (r *RedisCache) GetSearchResults(ctx context.Context, key string) (*models.SearchResponse, error) {
	if r == nil || r.client == nil {
		return nil, fmt.Errorf("redis client not available")
	}

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var response models.SearchResponse
	if err := json.Unmarshal([]byte(val), &response); err != nil {
		return nil, fmt.Errorf("unmarshal cached response: %w", err)
	}

	return &response, nil
}

func (r *RedisCache) SetSearchResults(ctx context.Context, key string, response *models.SearchResponse) error {
	if r == nil || r.client == nil {
		return fmt.Errorf("redis client not available")
	}

	data, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}

	return r.client.Set(ctx, key, data, r.ttl).Err()
}

// GenerateSearchKey builds a cache key from the two request dimensions. The
// query is normalized so "Lego" and "lego " share an entry.
func (r *RedisCache) GenerateSearchKey(query string, page int) string {
	return fmt.Sprintf("search:%s:p%d", strings.ToLower(strings.TrimSpace(query)), page)
}

func (r *RedisCache) IsAvailable() bool {
	return r != nil && r.client != nil
}

func (r *RedisCache) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

func (r *RedisCache) GetStats(ctx context.Context) map[string]interface{} {
	if r == nil || r.client == nil {
		return map[string]interface{}{
			"status": "unavailable",
		}
	}

	info := r.client.Info(ctx, "memory").Val()
	return map[string]interface{}{
		"status":      "connected",
		"ttl_seconds": int(r.ttl.Seconds()),
		"memory_info": info,
	}
}

func (r *RedisCache) GetAllKeys(ctx context.Context) []string {
	if r == nil || r.client == nil {
		return []string{}
	}
	keys, err := r.client.Keys(ctx, "search:*").Result()
	if err != nil {
		return []string{}
	}
	return keys
}

func (r *RedisCache) FlushCache(ctx context.Context) error {
	if r == nil || r.client == nil {
		return fmt.Errorf("redis client not available")
	}
	return r.client.FlushDB(ctx).Err()
}

func (r *RedisCache) GetKeyTTL(ctx context.Context, key string) time.Duration {
	if r == nil || r.client == nil {
		return 0
	}
	ttl, err := r.client.TTL(ctx, key).Result()
	if err != nil {
		return 0
	}
	return ttl
}

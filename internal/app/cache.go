package app

import (
	"fmt"

	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/cache"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// InitializeCache builds the configured cache store. With FailOpen set the
// store degrades to misses and no-op writes when the backend is down.
func InitializeCache(cfg config.CacheConfig) (cache.Store, error) {
	var store cache.Store

	switch cfg.Driver {
	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store = cache.NewRedisStore(client)
		log.Info().Str("addr", cfg.RedisAddr).Int("db", cfg.RedisDB).Msg("Using Redis cache")
	case config.DriverMemory:
		store = cache.NewMemoryStore(cfg.MemoryCapacity, cfg.MemoryShards)
		log.Info().Int("capacity", cfg.MemoryCapacity).Msg("Using in-memory cache")
	default:
		return nil, fmt.Errorf("unsupported cache driver %q", cfg.Driver)
	}

	if cfg.FailOpen {
		store = cache.NewFailOpenStore(store)
	}
	return store, nil
}

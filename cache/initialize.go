package cache

import (
	"canary-service/config"

	"github.com/umakantv/go-utils/cache"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// InitializeCache builds the user lookup cache. It returns nil when
// CACHE_TYPE is unset, which the handlers treat as caching disabled.
func InitializeCache(cfg config.Config) (cache.Cache, error) {
	if cfg.CacheType == "" {
		logger.Info("Cache disabled")
		return nil, nil
	}

	c, err := cache.New(cache.Config{
		Type:          cfg.CacheType,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	})
	if err != nil {
		logger.Error("Failed to initialize cache", zap.Error(err), zap.String("type", cfg.CacheType))
		return nil, err
	}

	logger.Info("Cache initialized", zap.String("type", cfg.CacheType), zap.String("addr", cfg.RedisAddr))
	return c, nil
}

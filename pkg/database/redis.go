package database

import (
	"context"
	"dsa_platform_backend/internal/config"
	"fmt"

	"github.com/go-redis/redis/v8"

	applog "dsa_platform_backend/pkg/logger"
)

// InitRedis 未配置 host 时返回 nil, nil
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, err
	}

	applog.Log.Info("Redis connection established")
	return rdb, nil
}

package database

import (
	"aistudio-academy/config"
	"aistudio-academy/pkg/logger"
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient backs the handoff mailbox and, with STORE_BACKEND=redis, the
// showcase collection.
var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

const redisPingTimeout = 5 * time.Second

func ConnectRedis(cfg *config.Config) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(Ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("ping redis at %s: %w", cfg.RedisFullAddr(), err)
	}

	RedisClient = client
	logger.Log.Info("redis connected", zap.String("addr", cfg.RedisFullAddr()), zap.Int("db", cfg.RedisDB))
	return nil
}

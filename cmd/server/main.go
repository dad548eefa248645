package main

import (
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"anoa.com/makanlist/internal/bootstrap"
	"anoa.com/makanlist/internal/config"
	"anoa.com/makanlist/internal/server"
	"anoa.com/makanlist/internal/store"
	"anoa.com/makanlist/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Init(logger.Config{
		FilePath: cfg.LogFilePath,
		Level:    cfg.LogLevel,
	}, cfg.AppEnv); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zap.L().Sync()

	st := store.New()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			zap.L().Warn("invalid REDIS_URL, continuing without redis", zap.Error(err))
		} else {
			redisClient = redis.NewClient(opts)
		}
	}

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedDemoUsers(st, ""); err != nil {
			zap.L().Warn("failed to seed demo users", zap.Error(err))
		}
	}

	srv := server.NewServer(cfg, st, redisClient)

	zap.L().Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := srv.Run(":" + cfg.Port); err != nil {
		zap.L().Fatal("server exited", zap.Error(err))
	}
}

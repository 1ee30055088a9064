package main

import (
	"aistudio-academy/config"
	"aistudio-academy/internal/api"
	"aistudio-academy/pkg/logger"
	"log"

	"go.uber.org/zap"
)

// @title AI Studio Academy API
// @version 1.0
// @description Backend of the AI Studio Academy: playground, showcase and tutorial demos.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter(cfg)
	if err != nil {
		logger.Log.Fatal("failed to create router", zap.Error(err))
	}

	logger.Log.Info("server starting",
		zap.String("addr", cfg.ServerAddr),
		zap.String("store", cfg.StoreBackend),
		zap.String("provider", cfg.GenAIProvider),
		zap.Bool("redis", cfg.RedisEnabled()),
	)
	if err := router.Run(cfg.ServerAddr); err != nil {
		logger.Log.Fatal("failed to run server", zap.Error(err))
	}
}

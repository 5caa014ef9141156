package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"assinatura/internal/api"
	"assinatura/internal/auth"
	"assinatura/internal/config"
	"assinatura/internal/database"
	"assinatura/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := database.Connect(context.Background(), cfg.Mongo)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	logger.Info("database connection ready", slog.String("database", cfg.Mongo.Database))

	storageClient, err := storage.NewClient(cfg.MinIO)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}
	logger.Info("asset storage ready", slog.String("bucket", cfg.MinIO.Bucket))

	tokenService, err := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatalf("init token service: %v", err)
	}

	router := api.NewRouter(cfg, logger)
	api.RegisterRoutes(
		router,
		database.NewUserStore(db),
		database.NewTemplateStore(db),
		storageClient,
		tokenService,
		cfg,
		logger,
	)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	logger.Info("api listening", slog.String("address", address))

	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}

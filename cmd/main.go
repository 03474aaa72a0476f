package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/AnthoniusHendriyanto/account-service/config"
	"github.com/AnthoniusHendriyanto/account-service/db"
	"github.com/AnthoniusHendriyanto/account-service/internal/account/handler"
	repo "github.com/AnthoniusHendriyanto/account-service/internal/account/repository/postgres"
	"github.com/AnthoniusHendriyanto/account-service/internal/account/service"
	"github.com/AnthoniusHendriyanto/account-service/internal/validation"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Error("failed to create upload directory", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}

	dbPool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	userRepo := repo.NewPostgresRepository(dbPool)
	hasher := service.NewBcryptHasher(cfg.HashCost)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	userService := service.NewUserService(userRepo, hasher, tokenService)
	accountHandler := handler.NewAccountHandler(userService, validation.New(), cfg.UploadDir)

	app := fiber.New(fiber.Config{
		ErrorHandler: handler.NewErrorHandler(logger),
	})

	guard := handler.AuthGuard(tokenService, handler.PublicRoutes(), logger)
	handler.RegisterRoutes(app, accountHandler, guard)

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Env)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"emotion-assistant/config"
	_ "emotion-assistant/docs" // Swagger docs
	"emotion-assistant/internal/assistant"
	convUC "emotion-assistant/internal/conversation/usecase"
	"emotion-assistant/internal/httpserver"
	"emotion-assistant/internal/middleware"
	"emotion-assistant/migrations"
	"emotion-assistant/pkg/log"
	"emotion-assistant/pkg/postgres"
	"emotion-assistant/pkg/scope"
)

// @title       Emotion Assistant API
// @description Conversational assistant: task classification, web-search answers, app control and mood-based food recommendations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Emotion Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to postgres: ", err)
		return
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, migrations.FS); err != nil {
		logger.Error(ctx, "Failed to migrate schema: ", err)
		return
	}

	// 4. Auth
	jwtManager, err := scope.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// 5. Assistant pipeline
	a, err := assistant.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to build assistant: ", err)
		return
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		JWTManager:  jwtManager,
		Cookie: middleware.CookieConfig{
			Name:   cfg.Auth.CookieName,
			TTL:    cfg.Auth.TokenTTL,
			Secure: cfg.Environment.IsProduction(),
		},
		Middleware: middleware.Config{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			Burst:          cfg.RateLimit.Burst,
		},
		Assistant: a,
		Conversation: convUC.Config{
			DefaultLocation:  cfg.Places.DefaultLocation,
			RecentFoodWindow: cfg.Recommend.RecentFoodWindow,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

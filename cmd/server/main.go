package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"mood_backend/internal/app/di"
	"mood_backend/internal/app/router"
	authadapters "mood_backend/internal/feature/auth/adapters"
	authhandler "mood_backend/internal/feature/auth/transport/handler"
	authusecase "mood_backend/internal/feature/auth/usecase"
	contenthandler "mood_backend/internal/feature/content/transport/handler"
	contentusecase "mood_backend/internal/feature/content/usecase"
	moodadapters "mood_backend/internal/feature/mood/adapters"
	moodhandler "mood_backend/internal/feature/mood/transport/handler"
	moodusecase "mood_backend/internal/feature/mood/usecase"
	"mood_backend/internal/platform/config"
	infradb "mood_backend/internal/platform/db"
	infraredis "mood_backend/internal/platform/redis"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	config.LoadDotEnv()
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// db
	db, err := infradb.Open(infradb.LoadConfigFromEnv())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() {
			if err := sqlDB.Close(); err != nil {
				slog.Error("failed to close database", "error", err)
			}
		}()
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, infraredis.LoadConfig()); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Content sources
	music, err := di.NewMusicSource(ctx, cfg, rdb)
	if err != nil {
		slog.Error("failed to create music source", "error", err)
		os.Exit(1)
	}
	quotes := di.NewQuoteSource(cfg, rdb)
	slog.Info("quote source selected", "source", cfg.QuoteSource)

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	moodRepo := moodadapters.NewMoodRepository(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo)
	moodUC := moodusecase.NewMoodUsecase(moodRepo)
	contentUC := contentusecase.NewContentUsecase(music, quotes)

	// Handler
	r := router.NewRouter(router.Handlers{
		Auth:    authhandler.NewAuthHandler(authUC),
		Mood:    moodhandler.NewMoodHandler(moodUC),
		Content: contenthandler.NewContentHandler(contentUC),
	}, cfg.AllowedOrigin)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/gotodo/backend/internal/auth"
	"github.com/gotodo/backend/internal/config"
	"github.com/gotodo/backend/internal/handler"
	"github.com/gotodo/backend/internal/logger"
	"github.com/gotodo/backend/internal/repository"
	"github.com/gotodo/backend/internal/repository/mysql"
	"github.com/gotodo/backend/internal/repository/postgres"
	"github.com/gotodo/backend/internal/service"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store repository.Store
	switch cfg.Database.Driver {
	case config.DriverMySQL:
		store, err = mysql.New(ctx, cfg.Database)
	default:
		store, err = postgres.New(ctx, cfg.Database)
	}
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to connect database")
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	tokens := auth.NewTokenService([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	userService := service.NewUserService(store.Users(), auth.NewPasswordHasher(), tokens)
	todoService := service.NewTodoService(store.Todos())

	router := handler.NewRouter(log, tokens, userService, todoService, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Str("driver", cfg.Database.Driver).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}

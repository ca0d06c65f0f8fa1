package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/config"
	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/logger"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info", false)
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.IsDevelopment())

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Select the user store
	var repo repository.UserRepository
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		db, err := database.Connect(cfg.SQLiteDSN, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer database.Close(db)

		if err := database.Migrate(db, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
		repo = repository.NewUserRepository(db)
	default:
		repo = repository.NewMemoryUserRepository()
	}
	log.Info().Str("driver", cfg.StoreDriver).Msg("User store initialized")

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: router.New(repo, router.Options{
			AllowedOrigins: cfg.AllowedOrigins(),
			Logger:         log,
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Info().Msgf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return
	}
	log.Info().Msg("Server shut down gracefully")
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"clefmusic-api/internal/config"
	"clefmusic-api/internal/db"
	"clefmusic-api/internal/logger"
	"clefmusic-api/internal/router"
	"clefmusic-api/internal/services"
	"clefmusic-api/internal/sessions"
)

func main() {
	log := logger.InitLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().Msg("Starting CLEF Music API")

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()
	log.Info().Str("driver", string(database.Driver())).Msg("Database connected")

	if err := db.RunMigrations(database); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}
	log.Info().Msg("Migrations complete")

	var store sessions.Store
	if cfg.RedisAddr != "" {
		store = sessions.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
		log.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis session store")
	} else {
		store = sessions.NewMemoryStore()
		log.Info().Msg("Using in-memory session store")
	}

	if cfg.CatalogSeed != "" {
		productService := services.NewProductService(database, log)
		if err := services.SeedCatalog(productService, cfg.CatalogSeed, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed catalog")
		}
	}

	r := router.SetupRouter(database, store, cfg, log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Server stopped")
}

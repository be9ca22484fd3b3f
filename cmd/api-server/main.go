package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creatorhub/database"
	"creatorhub/internal/config"
	"creatorhub/internal/microservices/http-api/router"
	"creatorhub/internal/social"
	"creatorhub/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	logger.Info().Str("env", cfg.GoEnv).Int("port", cfg.HTTPPort).Msg("starting creatorhub api server")

	// 2. Connect to the database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not connect to database")
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("could not migrate database")
	}

	// 3. Social metrics, cached in Redis when configured
	var fetcher social.Fetcher = social.NewMockFetcher()
	if cfg.RedisURL != "" {
		rdb, err := social.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, social metrics will not be cached")
		} else {
			defer rdb.Close()
			fetcher = social.NewCachedFetcher(fetcher, rdb, cfg.SocialCacheTTL)
		}
	}

	// 4. Setup Gin
	srv, err := router.New(cfg, db, router.NewServices(db, cfg), fetcher)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not build router")
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("api server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("api server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info().Str("signal", sig.String()).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}
	logger.Info().Msg("server exited")
}

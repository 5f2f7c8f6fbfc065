package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"findmygym/internal/config"
	"findmygym/internal/database"
	"findmygym/internal/logging"
	"findmygym/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("api exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Logging, "findmygym-api", cfg.AppEnv)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}
	log.Logger = *logger

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			// Caching and recently viewed are optional; keep serving without them.
			logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, continuing without cache")
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics.Register()

	router := newRouter(cfg, db, redisClient, logger)
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTP.Addr).Bool("redis", redisClient != nil).Msg("api server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info().Msg("api server stopped")
	return nil
}

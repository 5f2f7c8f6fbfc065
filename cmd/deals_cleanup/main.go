package main

import (
	"context"
	"fmt"
	"time"

	"findmygym/internal/config"
	"findmygym/internal/database"
	"findmygym/internal/domain/deal"
	"findmygym/internal/logging"

	"github.com/rs/zerolog/log"
)

// main switches off deals whose validity window has closed.
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("deals cleanup failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg.Logging, "findmygym-deals-cleanup", cfg.AppEnv)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := deal.NewDealRepository(db).DeactivateExpired(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("deactivate expired deals: %w", err)
	}
	logger.Info().Int64("deals", n).Msg("deals cleanup completed")
	return nil
}

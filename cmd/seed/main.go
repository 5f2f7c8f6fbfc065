package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"findmygym/internal/config"
	"findmygym/internal/database"
	"findmygym/internal/logging"
	"findmygym/internal/tasktracker"

	"github.com/rs/zerolog/log"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for generated data")
	flag.Parse()

	if err := run(*seed); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}

func run(seed int64) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg.Logging, "findmygym-seed", cfg.AppEnv)
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
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	s := &Seeder{
		db:        db,
		rng:       rand.New(rand.NewSource(seed)),
		now:       time.Now(),
		logger:    logger,
		tasksPath: tasktracker.PathFromEnv(),
	}
	sum, err := s.Run(context.Background())
	if err != nil {
		return err
	}
	sum.Print(os.Stdout)
	return nil
}

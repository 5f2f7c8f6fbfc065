package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"findmygym/internal/config"
	"findmygym/internal/database"
	"findmygym/internal/logging"
	"findmygym/internal/tasktracker"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("load config")
		return 1
	}
	// Keep stdout for command output.
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
	logger, closer, err := logging.New(cfg.Logging, "findmygym-tasktracker", cfg.AppEnv)
	if err != nil {
		log.Error().Err(err).Msg("init logger")
		return 1
	}
	if closer != nil {
		defer closer.Close()
	}

	root, err := os.Getwd()
	if err != nil {
		logger.Error().Err(err).Msg("resolve working directory")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := &tasktracker.CLI{
		Path:     tasktracker.PathFromEnv(),
		Root:     root,
		Out:      os.Stdout,
		Logger:   logger,
		Executor: tasktracker.ShellExecutor{},
		OpenDB: func(context.Context) (*gorm.DB, error) {
			db, err := database.Connect(cfg.Database.URL)
			if err != nil {
				return nil, err
			}
			return db, database.Migrate(db)
		},
	}
	return cli.Run(ctx, os.Args[1:])
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/riskibarqy/soccer-tracker/internal/app"
	"github.com/riskibarqy/soccer-tracker/internal/config"
	"github.com/riskibarqy/soccer-tracker/internal/interfaces/cli"
	"github.com/riskibarqy/soccer-tracker/internal/platform/logging"
	"github.com/riskibarqy/soccer-tracker/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "soccer-tracker: %v\n", err)
		os.Exit(1)
	}

	level := logging.LevelWarn
	if os.Getenv("LOG_LEVEL") != "" {
		level = cfg.LogLevel
	}
	logger := logging.NewConsole(os.Stderr, level)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracker := app.NewTracker(cfg, logger, nil)
	repl := cli.NewREPL(tracker, usecase.NewSession(uuid.NewString()), cli.Options{
		In:              os.Stdin,
		Out:             os.Stdout,
		Logger:          logger,
		OverviewWorkers: cfg.OverviewWorkers,
	})

	if err := repl.Run(ctx); err != nil {
		logger.Error("terminal session ended", "error", err)
		os.Exit(1)
	}
}

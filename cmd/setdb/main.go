// Command setdb resets the store database to its factory state. It drops and
// recreates both tables, reseeds the admin account and the product catalog,
// and restores the product image folder from its backup copy.
//
// This is destructive. Every existing user and product row is lost.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"happyshop/config"
	"happyshop/internal/infra/auth"
	"happyshop/internal/infra/bootstrap"
	logs "happyshop/internal/infra/log"
	"happyshop/internal/infra/persistence/postgres"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "setdb failed:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
	}()

	hasher := auth.NewBcryptHasher(cfg)

	bootstrapper := bootstrap.New(db, hasher, cfg.Bootstrap, logger)
	if err := bootstrapper.Run(ctx); err != nil {
		return err
	}

	logger.Info("Database reset complete", slog.String("service", cfg.Env.ServiceName))

	return nil
}

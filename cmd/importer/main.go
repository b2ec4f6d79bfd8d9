// Copyright (c) 2026 Folio. All rights reserved.

// Command importer copies a legacy JSON data tree into PostgreSQL.
//
// Existing records are updated in place, so the import can be re-run.
//
//	DATABASE_URL=postgres://... LEGACY_DIR=./data importer
//	importer -dir ./old-site/data
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/folioworks/folio/internal/core/legacy"
	"github.com/folioworks/folio/internal/core/project"
	"github.com/folioworks/folio/internal/core/staff"
	"github.com/folioworks/folio/internal/platform/config"
	"github.com/folioworks/folio/internal/platform/logger"
	"github.com/folioworks/folio/internal/platform/migration"
	pgstore "github.com/folioworks/folio/internal/platform/postgres"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "importer:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.StorageDriver != config.StoragePostgres {
		return fmt.Errorf("STORAGE_DRIVER must be %q, got %q", config.StoragePostgres, cfg.StorageDriver)
	}

	dir := flag.String("dir", cfg.LegacyDir, "legacy data directory")
	skipMigrations := flag.Bool("skip-migrations", false, "do not apply migrations first")
	flag.Parse()

	log, closeLog := logger.New(os.Stderr, logger.Options{App: "folio-importer", Debug: cfg.Debug})
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	if !*skipMigrations {
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			return err
		}
	}

	snapshot, err := legacy.Load(*dir, log)
	if err != nil {
		return err
	}

	report, err := legacy.Seed(ctx, snapshot, staff.NewPostgresRepository(pool), project.NewPostgresRepository(pool), log)
	if err != nil {
		return err
	}

	return json.NewEncoder(os.Stdout).Encode(report)
}

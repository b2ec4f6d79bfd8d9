// Copyright (c) 2026 Folio. All rights reserved.

// Command api is the entry point for the Folio HTTP API server.
//
// # Startup Sequence
//
//  1. Load configuration from environment variables.
//  2. Initialize the structured logger (stdout, optional rotating file).
//  3. Open content storage for the selected driver. The postgres driver
//     also runs migrations. The files driver seeds memory from a legacy tree.
//  4. Open media storage (filesystem or S3).
//  5. Wire HTTP handlers and serve with graceful shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/folioworks/folio/internal/api"
	"github.com/folioworks/folio/internal/core/article"
	"github.com/folioworks/folio/internal/core/flag"
	"github.com/folioworks/folio/internal/core/legacy"
	"github.com/folioworks/folio/internal/core/media"
	"github.com/folioworks/folio/internal/core/project"
	"github.com/folioworks/folio/internal/core/staff"
	"github.com/folioworks/folio/internal/platform/config"
	"github.com/folioworks/folio/internal/platform/constants"
	"github.com/folioworks/folio/internal/platform/logger"
	"github.com/folioworks/folio/internal/platform/migration"
	pgstore "github.com/folioworks/folio/internal/platform/postgres"
)

func main() {
	// ── 1. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// ── 2. Logger ─────────────────────────────────────────────────────────
	log, closeLog := logger.New(os.Stdout, logger.Options{
		App:        "folio",
		Debug:      cfg.Debug,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	defer func() { _ = closeLog() }()
	slog.SetDefault(log)

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_driver", cfg.StorageDriver),
		slog.String("media_driver", cfg.MediaDriver),
	)

	if cfg.APIKey == "" {
		log.Warn("api_key_unset", slog.String("effect", "every write request fails"))
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Misconfiguration surfaces quickly instead of hanging
	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. Content storage ────────────────────────────────────────────────
	stores, closeStores := openStores(startupCtx, cfg, log)
	defer closeStores()

	// ── 4. Media storage ──────────────────────────────────────────────────
	stores.Objects, err = openObjects(startupCtx, cfg)
	must(log, err, "open media storage")

	flags := flag.Default()
	if cfg.FlagsPath != "" {
		flags, err = flag.Load(cfg.FlagsPath)
		must(log, err, "load flag table")
	}

	// ── 5. HTTP server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, api.NewHandlers(cfg, stores, flags, log))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// openStores returns the content repositories for cfg.StorageDriver and a
// function releasing them.
func openStores(ctx context.Context, cfg *config.Config, log *slog.Logger) (api.Stores, func()) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		return api.Stores{
				Staff:    staff.NewPostgresRepository(pool),
				Projects: project.NewPostgresRepository(pool),
				Articles: article.NewPostgresRepository(pool),
				Uploads:  media.NewPostgresRegistry(pool),
				Checks: []api.Check{{
					Name: "postgres",
					Ping: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
				}},
			}, func() {
				log.Info("postgres_pool_closing")
				pool.Close()
			}

	case config.StorageFiles:
		stores := memoryStores()

		snapshot, err := legacy.Load(cfg.LegacyDir, log)
		must(log, err, "read legacy data")

		_, err = legacy.Seed(ctx, snapshot, stores.Staff, stores.Projects, log)
		must(log, err, "seed legacy data")
		return stores, func() {}

	default:
		return memoryStores(), func() {}
	}
}

func memoryStores() api.Stores {
	return api.Stores{
		Staff:    staff.NewMemoryRepository(),
		Projects: project.NewMemoryRepository(),
		Articles: article.NewMemoryRepository(),
		Uploads:  media.NewMemoryRegistry(),
	}
}

func openObjects(ctx context.Context, cfg *config.Config) (media.ObjectStore, error) {
	if cfg.MediaDriver == config.MediaS3 {
		return media.NewS3Store(ctx, media.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			UsePathStyle:    cfg.S3PathStyle,
		})
	}
	return media.NewFSStore(cfg.DataDir)
}

// must terminates the process on startup failures. After startup every
// error is returned and handled.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failed",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

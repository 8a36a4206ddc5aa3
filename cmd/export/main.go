package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	migrations "github.com/ghuser/scanregistry/migrations/registry"
	"github.com/ghuser/scanregistry/pkg/config"
	"github.com/ghuser/scanregistry/pkg/database"
	"github.com/ghuser/scanregistry/pkg/logger"
	"github.com/ghuser/scanregistry/pkg/migrator"
	appsvcs "github.com/ghuser/scanregistry/services/registry/application/services"
	registrydomain "github.com/ghuser/scanregistry/services/registry/domain"
	"github.com/ghuser/scanregistry/services/registry/infrastructure/persistence/sqlite"
)

// Command-line exporter: builds the CSV of all registered records and walks
// the delivery chain (export dir → home dir → temp dir → stdout), printing
// where the file landed. Useful when the device runs headless or the
// browser download path is unavailable.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)
	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DatabasePath, log)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrator.RunMigrations(db.DB(), migrations.MigrationsFS); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}

	repo := sqlite.NewRecordRepository(db)
	query := appsvcs.NewRecordsQuery(repo, nil, log)
	exporter := appsvcs.NewExporter(query, log, appsvcs.DefaultStrategies(cfg.ExportDir)...)

	doc, err := exporter.Export(ctx)
	if err != nil {
		if errors.Is(err, registrydomain.ErrNothingToExport) {
			fmt.Fprintln(os.Stderr, "nothing to export: no records registered yet")
			os.Exit(0)
		}
		log.Error("export failed", "error", err)
		os.Exit(1)
	}

	dest, err := exporter.Deliver(ctx, doc)
	if err != nil {
		log.Error("all delivery mechanisms failed; copy the data manually", "error", err)
		os.Exit(1)
	}

	fmt.Println(dest)
}

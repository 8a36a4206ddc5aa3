// Package registry embeds the goose migrations for the record store.
// cmd/api runs them on startup via migrator.RunMigrations.
package registry

import "embed"

//go:embed *.sql
var MigrationsFS embed.FS

package app

import (
	"github.com/ghuser/scanregistry/pkg/config"
	"github.com/ghuser/scanregistry/pkg/database"
	"github.com/ghuser/scanregistry/pkg/events"
	"github.com/ghuser/scanregistry/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's route registration during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "registering scan", "code", code)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Config   *config.Config
}

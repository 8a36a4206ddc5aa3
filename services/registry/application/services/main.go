package services

import (
	"github.com/ghuser/scanregistry/pkg/app"
	"github.com/ghuser/scanregistry/services/registry/infrastructure/persistence/sqlite"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Registration *RegistrationService
	Query        *RecordsQuery
	Exporter     *Exporter
}

// New wires all registry application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := sqlite.NewRecordRepository(a.Db)
	query := NewRecordsQuery(repo, a.EventBus, a.Logger)

	exportDir := ""
	if a.Config != nil {
		exportDir = a.Config.ExportDir
	}

	return &Services{
		Registration: NewRegistrationService(repo, a.EventBus, a.Logger),
		Query:        query,
		Exporter:     NewExporter(query, a.Logger, DefaultStrategies(exportDir)...),
	}
}

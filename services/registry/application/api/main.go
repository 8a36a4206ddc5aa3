package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/scanregistry/pkg/app"
	"github.com/ghuser/scanregistry/services/registry/application/handlers"
	appsvcs "github.com/ghuser/scanregistry/services/registry/application/services"
)

// RegistryRoutes registers the scan and record endpoints on the provided chi router.
func RegistryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/scans", func(r chi.Router) {
			r.Post("/", handlers.NewPostScanHandler(svcs).Execute)
			r.Get("/check", handlers.NewCheckScanHandler(svcs).Execute)
		})
		r.Route("/records", func(r chi.Router) {
			r.Get("/", handlers.NewListRecordsHandler(svcs).Execute)
			r.Patch("/", handlers.NewPatchRecordHandler(svcs).Execute)
			r.Delete("/", handlers.NewDeleteRecordHandler(svcs).Execute)
		})
		r.Get("/export", handlers.NewExportRecordsHandler(svcs).Execute)
	})
}

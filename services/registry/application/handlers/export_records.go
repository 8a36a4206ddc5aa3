package handlers

import (
	"net/http"

	"github.com/ghuser/scanregistry/pkg/errhttp"
	"github.com/ghuser/scanregistry/pkg/httpx"
	appsvcs "github.com/ghuser/scanregistry/services/registry/application/services"
)

// ExportRecordsHandler handles GET /export requests. The attachment response
// is the browser-facing delivery mechanism; the CLI exporter covers the
// filesystem fallbacks.
type ExportRecordsHandler struct {
	svc *appsvcs.Services
}

// NewExportRecordsHandler returns an ExportRecordsHandler backed by the given services.
func NewExportRecordsHandler(svc *appsvcs.Services) *ExportRecordsHandler {
	return &ExportRecordsHandler{svc: svc}
}

// Execute streams the record set as a CSV file download.
//
//	@Summary		Export records as CSV
//	@Description	Builds a CSV of all records (timestamps in EAT) and returns it as a file download
//	@Tags			records
//	@Produce		text/csv
//	@Success		200	{string}	string	"CSV content"
//	@Failure		409	{object}	ErrorResponse	"nothing to export"
//	@Router			/export [get]
func (h *ExportRecordsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Exporter.Export(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.Attachment(w, doc.Filename, doc.MIME, doc.Content)
}

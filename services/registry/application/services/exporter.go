package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ghuser/scanregistry/pkg/logger"
	registrydomain "github.com/ghuser/scanregistry/services/registry/domain"
	"github.com/ghuser/scanregistry/services/registry/domain/models"
	domainsvcs "github.com/ghuser/scanregistry/services/registry/domain/services"
)

// CSVMIMEType is the content type of exported documents.
const CSVMIMEType = "text/csv"

// csvHeader is the fixed first line of every export.
const csvHeader = "Name,QR Code,Registration Date (EAT)"

// ExportDocument is a fully built CSV export ready for delivery.
type ExportDocument struct {
	Filename string
	MIME     string
	Content  []byte
}

// Exporter builds CSV exports of the record set and hands them to the first
// delivery strategy that succeeds.
type Exporter struct {
	query      *RecordsQuery
	strategies []DeliveryStrategy
	log        logger.Logger
}

// NewExporter returns an Exporter reading through query and delivering via
// strategies, tried in the order given.
func NewExporter(query *RecordsQuery, log logger.Logger, strategies ...DeliveryStrategy) *Exporter {
	return &Exporter{query: query, strategies: strategies, log: log}
}

// Export loads all records (newest first) and builds the CSV document.
// Returns ErrNothingToExport when the record set is empty — no document is
// built for an empty collection.
func (e *Exporter) Export(ctx context.Context) (*ExportDocument, error) {
	recs, err := e.query.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	if len(recs) == 0 {
		return nil, registrydomain.ErrNothingToExport
	}

	return &ExportDocument{
		Filename: exportFilename(time.Now().UTC()),
		MIME:     CSVMIMEType,
		Content:  []byte(BuildCSV(recs)),
	}, nil
}

// Deliver walks the strategy chain and returns the destination reported by
// the first strategy that succeeds. An individual strategy failing is normal
// fallthrough, not an error; only exhausting the whole chain is a failure
// (ErrExportFailed).
func (e *Exporter) Deliver(ctx context.Context, doc *ExportDocument) (string, error) {
	var lastErr error
	for _, s := range e.strategies {
		dest, err := s.Deliver(ctx, doc)
		if err == nil {
			e.log.InfoContext(ctx, "export delivered", "strategy", s.Name(), "destination", dest)
			return dest, nil
		}
		lastErr = err
		e.log.DebugContext(ctx, "export delivery fell through", "strategy", s.Name(), "error", err)
	}
	if lastErr != nil {
		return "", fmt.Errorf("%w: %w", registrydomain.ErrExportFailed, lastErr)
	}
	return "", registrydomain.ErrExportFailed
}

// BuildCSV serializes records into CSV text: the fixed header line, then one
// row per record in the order given. Every data field is wrapped in double
// quotes with internal quotes doubled; rows are joined by \n with no
// trailing newline.
func BuildCSV(recs []*models.Record) string {
	lines := make([]string, 0, len(recs)+1)
	lines = append(lines, csvHeader)
	for _, rec := range recs {
		lines = append(lines, strings.Join([]string{
			csvQuote(rec.Name),
			csvQuote(rec.Code.String()),
			csvQuote(domainsvcs.FormatCSV(rec.CreatedAt)),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// csvQuote wraps s in double quotes, doubling internal quotes.
func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// exportFilename builds "qr-registration-{ISO timestamp}.csv" with colons
// replaced by dashes so the name is valid on every filesystem.
func exportFilename(now time.Time) string {
	ts := strings.ReplaceAll(now.Format(time.RFC3339), ":", "-")
	return "qr-registration-" + ts + ".csv"
}

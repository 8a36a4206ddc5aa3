package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/scanregistry/pkg/errhttp"
	"github.com/ghuser/scanregistry/pkg/httpx"
	pkgvalidator "github.com/ghuser/scanregistry/pkg/validator"
	appsvcs "github.com/ghuser/scanregistry/services/registry/application/services"
	"github.com/ghuser/scanregistry/services/registry/domain/models"
	domainsvcs "github.com/ghuser/scanregistry/services/registry/domain/services"
)

// RegisterScanRequest is the request body for POST /scans.
type RegisterScanRequest struct {
	Code string `json:"code" validate:"required,max=2953" example:"TICKET-00142"`
	Name string `json:"name" validate:"max=255"          example:"Alice"`
} // @name RegisterScanRequest

// RecordResponse is the JSON shape of one registered record.
type RecordResponse struct {
	Code         string    `json:"code"          example:"TICKET-00142"`
	Name         string    `json:"name"          example:"Alice"`
	RegisteredAt time.Time `json:"registered_at" example:"2024-01-01T00:00:00Z"`
	// DisplayTime is RegisteredAt rendered in the fixed EAT display zone.
	DisplayTime string `json:"display_time" example:"Jan 1, 2024, 3:00 AM EAT"`
} // @name RecordResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"code already registered"`
} // @name ErrorResponse

func toRecordResponse(rec *models.Record) RecordResponse {
	return RecordResponse{
		Code:         rec.Code.String(),
		Name:         rec.Name,
		RegisteredAt: rec.CreatedAt,
		DisplayTime:  domainsvcs.FormatHuman(rec.CreatedAt),
	}
}

// PostScanHandler handles POST /scans requests.
type PostScanHandler struct {
	svc *appsvcs.Services
}

// NewPostScanHandler returns a PostScanHandler backed by the given services.
func NewPostScanHandler(svc *appsvcs.Services) *PostScanHandler {
	return &PostScanHandler{svc: svc}
}

// Execute registers a decoded scan under a name.
//
//	@Summary		Register scan
//	@Description	Associates a decoded QR payload with a name and stores the record
//	@Tags			scans
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterScanRequest	true	"Scan registration request"
//	@Success		201		{object}	RecordResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/scans [post]
func (h *PostScanHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterScanRequest](w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Registration.RegisterScan(r.Context(), req.Code, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toRecordResponse(rec))
}

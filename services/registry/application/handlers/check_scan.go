package handlers

import (
	"net/http"

	"github.com/ghuser/scanregistry/pkg/errhttp"
	"github.com/ghuser/scanregistry/pkg/httpx"
	appsvcs "github.com/ghuser/scanregistry/services/registry/application/services"
)

// CheckScanResponse reports whether a code is already registered.
type CheckScanResponse struct {
	Duplicate bool `json:"duplicate" example:"true"`
} // @name CheckScanResponse

// CheckScanHandler handles GET /scans/check requests. The scanner UI calls
// it on every decode so the duplicate warning fires before the user commits
// to registering.
type CheckScanHandler struct {
	svc *appsvcs.Services
}

// NewCheckScanHandler returns a CheckScanHandler backed by the given services.
func NewCheckScanHandler(svc *appsvcs.Services) *CheckScanHandler {
	return &CheckScanHandler{svc: svc}
}

// Execute checks a decoded payload against the registered set.
//
//	@Summary		Check for duplicate
//	@Description	Reports whether the given code is already registered, using the same comparison as registration
//	@Tags			scans
//	@Produce		json
//	@Param			code	query		string	true	"Decoded QR payload"
//	@Success		200		{object}	CheckScanResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/scans/check [get]
func (h *CheckScanHandler) Execute(w http.ResponseWriter, r *http.Request) {
	dup, err := h.svc.Registration.CheckDuplicate(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, CheckScanResponse{Duplicate: dup})
}

package handlers

import (
	"net/http"

	"github.com/ghuser/scanregistry/pkg/errhttp"
	"github.com/ghuser/scanregistry/pkg/httpx"
	pkgvalidator "github.com/ghuser/scanregistry/pkg/validator"
	appsvcs "github.com/ghuser/scanregistry/services/registry/application/services"
)

// EditNameRequest is the request body for PATCH /records. The code travels
// in the query string because decoded QR payloads may contain any character,
// including path separators.
type EditNameRequest struct {
	Name string `json:"name" validate:"required,max=255" example:"Alice B."`
} // @name EditNameRequest

// PatchRecordHandler handles PATCH /records requests.
type PatchRecordHandler struct {
	svc *appsvcs.Services
}

// NewPatchRecordHandler returns a PatchRecordHandler backed by the given services.
func NewPatchRecordHandler(svc *appsvcs.Services) *PatchRecordHandler {
	return &PatchRecordHandler{svc: svc}
}

// Execute renames a registered record. Only the name changes; the
// registration instant is preserved.
//
//	@Summary		Edit record name
//	@Description	Replaces the name of the record with the given code
//	@Tags			records
//	@Accept			json
//	@Produce		json
//	@Param			code	query		string			true	"Record code"
//	@Param			request	body		EditNameRequest	true	"New name"
//	@Success		200		{object}	RecordResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/records [patch]
func (h *PatchRecordHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[EditNameRequest](w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Query.EditName(r.Context(), r.URL.Query().Get("code"), req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRecordResponse(rec))
}

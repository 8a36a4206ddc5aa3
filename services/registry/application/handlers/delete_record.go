package handlers

import (
	"net/http"

	"github.com/ghuser/scanregistry/pkg/errhttp"
	appsvcs "github.com/ghuser/scanregistry/services/registry/application/services"
)

// DeleteRecordHandler handles DELETE /records requests.
type DeleteRecordHandler struct {
	svc *appsvcs.Services
}

// NewDeleteRecordHandler returns a DeleteRecordHandler backed by the given services.
func NewDeleteRecordHandler(svc *appsvcs.Services) *DeleteRecordHandler {
	return &DeleteRecordHandler{svc: svc}
}

// Execute deletes a registered record.
//
//	@Summary		Delete record
//	@Description	Removes the record with the given code; 404 when no such record exists
//	@Tags			records
//	@Produce		json
//	@Param			code	query	string	true	"Record code"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/records [delete]
func (h *DeleteRecordHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Query.Remove(r.Context(), r.URL.Query().Get("code")); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

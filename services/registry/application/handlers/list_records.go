package handlers

import (
	"net/http"

	"github.com/ghuser/scanregistry/pkg/errhttp"
	"github.com/ghuser/scanregistry/pkg/httpx"
	appsvcs "github.com/ghuser/scanregistry/services/registry/application/services"
)

// ListRecordsResponse is the payload for GET /records.
type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total" example:"2"`
} // @name ListRecordsResponse

// ListRecordsHandler handles GET /records requests.
type ListRecordsHandler struct {
	svc *appsvcs.Services
}

// NewListRecordsHandler returns a ListRecordsHandler backed by the given services.
func NewListRecordsHandler(svc *appsvcs.Services) *ListRecordsHandler {
	return &ListRecordsHandler{svc: svc}
}

// Execute lists all registered records, newest first.
//
//	@Summary		List records
//	@Description	Returns every registered record sorted by registration time descending
//	@Tags			records
//	@Produce		json
//	@Success		200	{object}	ListRecordsResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/records [get]
func (h *ListRecordsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.Query.ListAll(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]RecordResponse, len(recs))
	for i, rec := range recs {
		out[i] = toRecordResponse(rec)
	}

	httpx.JSON(w, http.StatusOK, ListRecordsResponse{Records: out, Total: len(out)})
}

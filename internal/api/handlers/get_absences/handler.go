package get_absences

import (
	"net/http"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
	"github.com/bestbuddies/grooming-service/internal/api/middleware"
)

// Handler serves the absence listings: the admin review queue and the
// staff member's own requests.
type Handler struct {
	service AbsenceService
	logger  Logger
}

func NewHandler(service AbsenceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/absences?status=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = &raw
	}

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		h.logger.Error("GET /absences - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleMine GET /api/v1/absences/mine
func (h *Handler) HandleMine(w http.ResponseWriter, r *http.Request) {
	staffID := middleware.UserIDFromContext(r.Context())

	result, err := h.service.GetByStaff(r.Context(), staffID)
	if err != nil {
		h.logger.Error("GET /absences/mine - Failed: staff_id=%s, error=%v", staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

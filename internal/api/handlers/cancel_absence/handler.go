package cancel_absence

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
	"github.com/bestbuddies/grooming-service/internal/api/middleware"
	"github.com/bestbuddies/grooming-service/internal/service/absences"
)

const (
	msgNotFound   = "absence request not found"
	msgForbidden  = "only the requester can withdraw an absence request"
	msgNotPending = "only pending requests can be withdrawn"
)

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

// Handle POST /api/v1/absences/{absenceId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	absenceID := mux.Vars(r)["absenceId"]
	staffID := middleware.UserIDFromContext(r.Context())

	result, err := h.service.CancelByStaff(r.Context(), absenceID, staffID)
	if err != nil {
		switch {
		case errors.Is(err, absences.ErrAbsenceNotFound):
			h.logger.Warn("POST /absences/{id}/cancel - Not found: absence_id=%s", absenceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, absences.ErrAccessDenied):
			h.logger.Warn("POST /absences/{id}/cancel - Access denied: absence_id=%s, staff_id=%s", absenceID, staffID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, absences.ErrNotPending):
			h.logger.Warn("POST /absences/{id}/cancel - Not pending: absence_id=%s", absenceID)
			handlers.RespondBadRequest(w, msgNotPending)

		default:
			h.logger.Error("POST /absences/{id}/cancel - Failed: absence_id=%s, error=%v", absenceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /absences/{id}/cancel - Withdrawn: absence_id=%s", absenceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

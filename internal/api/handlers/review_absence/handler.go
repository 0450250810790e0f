package review_absence

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
	"github.com/bestbuddies/grooming-service/internal/service/absences"
	"github.com/bestbuddies/grooming-service/internal/service/absences/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "absence request not found"
	msgAlreadyReviewed    = "absence request was already reviewed"
	msgInvalidDecision    = "decision must be 'approve' or 'reject'"
)

// ReviewAbsenceRequest HTTP request model
type ReviewAbsenceRequest struct {
	Decision  string  `json:"decision"`
	AdminNote *string `json:"adminNote,omitempty"`
}

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

// Handle POST /api/v1/absences/{absenceId}/review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	absenceID := mux.Vars(r)["absenceId"]

	var req ReviewAbsenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /absences/{id}/review - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Review(r.Context(), absenceID, &models.ReviewRequest{
		Decision:  models.ReviewDecision(req.Decision),
		AdminNote: req.AdminNote,
	})
	if err != nil {
		switch {
		case errors.Is(err, absences.ErrAbsenceNotFound):
			h.logger.Warn("POST /absences/{id}/review - Not found: absence_id=%s", absenceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, absences.ErrAlreadyReviewed):
			h.logger.Warn("POST /absences/{id}/review - Already reviewed: absence_id=%s", absenceID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyReviewed)

		case errors.Is(err, absences.ErrInvalidDecision):
			h.logger.Warn("POST /absences/{id}/review - Invalid decision: absence_id=%s, decision=%q", absenceID, req.Decision)
			handlers.RespondBadRequest(w, msgInvalidDecision)

		default:
			h.logger.Error("POST /absences/{id}/review - Failed: absence_id=%s, error=%v", absenceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /absences/{id}/review - Reviewed: absence_id=%s, status=%s", absenceID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

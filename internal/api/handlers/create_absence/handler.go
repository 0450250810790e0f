package create_absence

import (
	"errors"
	"net/http"
	"time"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
	"github.com/bestbuddies/grooming-service/internal/api/middleware"
	"github.com/bestbuddies/grooming-service/internal/domain"
	"github.com/bestbuddies/grooming-service/internal/service/absences/models"
	"github.com/bestbuddies/grooming-service/internal/service/groomers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "date must be in YYYY-MM-DD format"
	msgReasonRequired     = "reason is required"
	msgRosterFull         = "no roster seat available for this staff account"
)

// CreateAbsenceRequest HTTP request model
type CreateAbsenceRequest struct {
	Date      string  `json:"date"`
	Reason    string  `json:"reason"`
	StaffName string  `json:"staffName"`
	ProofName *string `json:"proofName,omitempty"`
	ProofURL  *string `json:"proofUrl,omitempty"`
}

type Handler struct {
	absences AbsenceService
	groomers GroomerService
	logger   Logger
}

func NewHandler(absences AbsenceService, groomers GroomerService, logger Logger) *Handler {
	return &Handler{
		absences: absences,
		groomers: groomers,
		logger:   logger,
	}
}

// Handle POST /api/v1/absences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID := middleware.UserIDFromContext(r.Context())

	var req CreateAbsenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /absences - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /absences - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if req.Reason == "" {
		handlers.RespondBadRequest(w, msgReasonRequired)
		return
	}

	groomer, err := h.groomers.LinkStaff(r.Context(), staffID)
	if err != nil {
		if errors.Is(err, groomers.ErrRosterFull) {
			h.logger.Warn("POST /absences - Roster full: staff_id=%s", staffID)
			handlers.RespondError(w, http.StatusConflict, msgRosterFull)
			return
		}
		h.logger.Error("POST /absences - Failed to resolve groomer: staff_id=%s, error=%v", staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	staffName := req.StaffName
	if staffName == "" {
		staffName = groomer.Name
	}

	result, err := h.absences.Create(r.Context(), &models.CreateRequest{
		GroomerID: groomer.ID,
		StaffID:   staffID,
		StaffName: staffName,
		Date:      date,
		Reason:    req.Reason,
		ProofName: req.ProofName,
		ProofURL:  req.ProofURL,
	})
	if err != nil {
		h.logger.Error("POST /absences - Failed: staff_id=%s, error=%v", staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /absences - Absence requested: absence_id=%s, groomer_id=%s, date=%s",
		result.ID, groomer.ID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

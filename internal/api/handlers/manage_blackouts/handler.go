package manage_blackouts

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
	"github.com/bestbuddies/grooming-service/internal/domain"
	blockday "github.com/bestbuddies/grooming-service/internal/usecase/block_day"
	unblockday "github.com/bestbuddies/grooming-service/internal/usecase/unblock_day"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "date must be in YYYY-MM-DD format"
	msgNotBlocked         = "day is not blocked"
)

// BlockDayRequest HTTP request model
type BlockDayRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// Handler serves the calendar blackout endpoints.
type Handler struct {
	blockDay   BlockDayUseCase
	unblockDay UnblockDayUseCase
	logger     Logger
}

func NewHandler(blockDay BlockDayUseCase, unblockDay UnblockDayUseCase, logger Logger) *Handler {
	return &Handler{
		blockDay:   blockDay,
		unblockDay: unblockDay,
		logger:     logger,
	}
}

// HandleBlock POST /api/v1/blackouts
func (h *Handler) HandleBlock(w http.ResponseWriter, r *http.Request) {
	var req BlockDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blackouts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /blackouts - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.blockDay.Execute(r.Context(), date, req.Reason)
	if err != nil {
		if errors.Is(err, blockday.ErrInvalidInput) {
			h.logger.Warn("POST /blackouts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /blackouts - Failed: date=%s, error=%v", req.Date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /blackouts - Day blocked: date=%s, cancelled=%d", result.Date, result.CancelledBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUnblock DELETE /api/v1/blackouts/{date}
func (h *Handler) HandleUnblock(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("DELETE /blackouts/{date} - Invalid date: %s", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.unblockDay.Execute(r.Context(), date); err != nil {
		if errors.Is(err, unblockday.ErrNotBlocked) {
			h.logger.Warn("DELETE /blackouts/{date} - Not blocked: date=%s", rawDate)
			handlers.RespondNotFound(w, msgNotBlocked)
			return
		}
		h.logger.Error("DELETE /blackouts/{date} - Failed: date=%s, error=%v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /blackouts/{date} - Day unblocked: date=%s", rawDate)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

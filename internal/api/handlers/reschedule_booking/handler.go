package reschedule_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
	"github.com/bestbuddies/grooming-service/internal/domain"
	usecase "github.com/bestbuddies/grooming-service/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "date must be in YYYY-MM-DD format"
	msgNotFound           = "booking not found"
	msgTerminal           = "booking is in a terminal state"
	msgDayBlackedOut      = "the requested day is closed"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	Date                  string `json:"date"`
	Slot                  string `json:"slot"`
	ConfirmConflictCancel bool   `json:"confirmConflictCancel,omitempty"`
}

// ConflictResponse describes the booking already holding the window
type ConflictResponse struct {
	Error       string          `json:"error"`
	Conflicting ConflictBooking `json:"conflicting"`
}

type ConflictBooking struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	Slot         string `json:"slot"`
	Status       string `json:"status"`
}

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/reschedule - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &usecase.Request{
		BookingID:             bookingID,
		Date:                  date,
		Slot:                  req.Slot,
		ConfirmConflictCancel: req.ConfirmConflictCancel,
		Actor:                 domain.ActorAdmin,
	})
	if err != nil {
		var conflict *usecase.SlotConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings/{id}/reschedule - Slot conflict: booking_id=%s, conflicting=%s",
				bookingID, conflict.Conflicting.Code)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error: "the groomer already has a booking in this slot",
				Conflicting: ConflictBooking{
					ID:           conflict.Conflicting.ID,
					Code:         conflict.Conflicting.Code,
					CustomerName: conflict.Conflicting.CustomerName,
					Date:         conflict.Conflicting.Date.Format(domain.DateFormat),
					Slot:         string(conflict.Conflicting.Slot),
					Status:       string(conflict.Conflicting.Status),
				},
			})

		case errors.Is(err, usecase.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/reschedule - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, usecase.ErrTerminalBooking):
			h.logger.Warn("POST /bookings/{id}/reschedule - Terminal booking: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgTerminal)

		case errors.Is(err, usecase.ErrDayBlackedOut):
			h.logger.Warn("POST /bookings/{id}/reschedule - Day blacked out: %s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDayBlackedOut)

		case errors.Is(err, usecase.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/{id}/reschedule - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reschedule - Rescheduled: booking_id=%s to %s %s",
		bookingID, result.Date, result.Slot)
	handlers.RespondJSON(w, http.StatusOK, result)
}

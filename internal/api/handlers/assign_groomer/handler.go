package assign_groomer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
	"github.com/bestbuddies/grooming-service/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgGroomerNotFound    = "groomer not found"
	msgInvalidTransition  = "booking is in a terminal state"
)

// AssignGroomerRequest HTTP request model
type AssignGroomerRequest struct {
	GroomerID string `json:"groomerId"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/groomer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req AssignGroomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.GroomerID == "" {
		h.logger.Warn("PATCH /bookings/{id}/groomer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.AssignGroomer(r.Context(), bookingID, req.GroomerID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/groomer - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrGroomerNotFound):
			h.logger.Warn("PATCH /bookings/{id}/groomer - Groomer not found: groomer_id=%s", req.GroomerID)
			handlers.RespondNotFound(w, msgGroomerNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/groomer - Terminal booking: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /bookings/{id}/groomer - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/groomer - Groomer assigned: booking_id=%s, groomer_id=%s",
		bookingID, req.GroomerID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

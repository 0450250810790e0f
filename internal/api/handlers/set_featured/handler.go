package set_featured

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
	"github.com/bestbuddies/grooming-service/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "booking not found"
	msgMissingMedia       = "featured booking needs before and after photos"
)

// SetFeaturedRequest HTTP request model
type SetFeaturedRequest struct {
	Featured bool `json:"featured"`
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

// Handle PATCH /api/v1/bookings/{bookingId}/featured
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req SetFeaturedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/featured - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.SetFeatured(r.Context(), bookingID, req.Featured)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/featured - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrMissingMedia):
			h.logger.Warn("PATCH /bookings/{id}/featured - Missing media: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgMissingMedia)

		default:
			h.logger.Error("PATCH /bookings/{id}/featured - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/featured - Updated: booking_id=%s, featured=%t", bookingID, req.Featured)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

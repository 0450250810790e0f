package get_customer_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
	"github.com/bestbuddies/grooming-service/internal/api/middleware"
	"github.com/bestbuddies/grooming-service/internal/domain"
	"github.com/bestbuddies/grooming-service/internal/service/bookings"
)

const msgForbidden = "access denied"

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

// Handle GET /api/v1/customers/{customerId}/bookings?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	// Customers only list their own bookings
	if middleware.RoleFromContext(r.Context()) == domain.RoleCustomer &&
		middleware.UserIDFromContext(r.Context()) != customerID {
		h.logger.Warn("GET /customers/{id}/bookings - Access denied: customer_id=%s, user_id=%s",
			customerID, middleware.UserIDFromContext(r.Context()))
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.GetByCustomer(r.Context(), customerID, status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /customers/{id}/bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /customers/{id}/bookings - Failed: customer_id=%s, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

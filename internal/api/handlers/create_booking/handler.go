package create_booking

import (
	"errors"
	"net/http"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
	"github.com/bestbuddies/grooming-service/internal/api/middleware"
	"github.com/bestbuddies/grooming-service/internal/domain"
	createBooking "github.com/bestbuddies/grooming-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgCustomerNotFound    = "customer not found"
	msgCustomerBanned      = "customer is banned from booking"
	msgPackageNotFound     = "package not found"
	msgDayBlackedOut       = "the salon is closed on this date"
	msgGroomerNotAvailable = "the requested groomer is not available for this slot"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	customerID := middleware.UserIDFromContext(r.Context())
	actor := domain.ActorCustomer
	if middleware.RoleFromContext(r.Context()) == domain.RoleAdmin {
		// Walk-in entry: the admin books on the customer's behalf
		actor = domain.ActorAdmin
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq, actor)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%s", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrCustomerBanned):
			h.logger.Warn("POST /bookings - Customer banned: customer_id=%s", customerID)
			handlers.RespondForbidden(w, msgCustomerBanned)

		case errors.Is(err, createBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: package_id=%s", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createBooking.ErrDayBlackedOut):
			h.logger.Warn("POST /bookings - Day blacked out: date=%s", req.Date)
			handlers.RespondConflict(w, msgDayBlackedOut)

		case errors.Is(err, createBooking.ErrGroomerNotAvailable):
			h.logger.Warn("POST /bookings - Groomer not available: groomer_id=%s, date=%s, slot=%s",
				req.GroomerID, req.Date, req.Slot)
			handlers.RespondConflict(w, msgGroomerNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%s, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%s, code=%s", result.ID, result.Code)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

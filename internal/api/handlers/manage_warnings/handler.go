package manage_warnings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
	"github.com/bestbuddies/grooming-service/internal/service/customers"
	"github.com/bestbuddies/grooming-service/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUserNotFound       = "customer not found"
	msgNotCustomer        = "user is not a customer"
	msgNotBanned          = "customer is not banned"
	msgReasonRequired     = "reason is required"
)

// WarnRequest HTTP request model for warnings and bans
type WarnRequest struct {
	Reason string `json:"reason"`
}

// LiftBanRequest HTTP request model
type LiftBanRequest struct {
	ResetWarnings bool `json:"resetWarnings,omitempty"`
}

// Handler serves the admin warning and ban endpoints for customers.
type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleWatchlist GET /api/v1/customers/watchlist
func (h *Handler) HandleWatchlist(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetWatchlist(r.Context())
	if err != nil {
		h.logger.Error("GET /customers/watchlist - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/customers/{customerId}/warnings
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	result, err := h.service.GetWarningInfo(r.Context(), customerID)
	if err != nil {
		h.respondServiceError(w, "GET /customers/{id}/warnings", customerID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleWarn POST /api/v1/customers/{customerId}/warnings
func (h *Handler) HandleWarn(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	reason, ok := h.decodeReason(w, r, "POST /customers/{id}/warnings")
	if !ok {
		return
	}

	result, err := h.service.IncrementWarning(r.Context(), customerID, reason)
	if err != nil {
		h.respondServiceError(w, "POST /customers/{id}/warnings", customerID, err)
		return
	}

	h.logger.Info("POST /customers/{id}/warnings - Warned: customer_id=%s, count=%d, banned=%t",
		customerID, result.WarningCount, result.IsBanned)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleBan POST /api/v1/customers/{customerId}/ban
func (h *Handler) HandleBan(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	reason, ok := h.decodeReason(w, r, "POST /customers/{id}/ban")
	if !ok {
		return
	}

	result, err := h.service.Ban(r.Context(), customerID, reason)
	if err != nil {
		h.respondServiceError(w, "POST /customers/{id}/ban", customerID, err)
		return
	}

	h.logger.Info("POST /customers/{id}/ban - Banned: customer_id=%s", customerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleLiftBan POST /api/v1/customers/{customerId}/ban/lift
func (h *Handler) HandleLiftBan(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	var req LiftBanRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /customers/{id}/ban/lift - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.service.LiftBan(r.Context(), customerID, &models.LiftBanRequest{
		ResetWarnings: req.ResetWarnings,
	})
	if err != nil {
		if errors.Is(err, customers.ErrNotBanned) {
			h.logger.Warn("POST /customers/{id}/ban/lift - Not banned: customer_id=%s", customerID)
			handlers.RespondBadRequest(w, msgNotBanned)
			return
		}
		h.respondServiceError(w, "POST /customers/{id}/ban/lift", customerID, err)
		return
	}

	h.logger.Info("POST /customers/{id}/ban/lift - Lifted: customer_id=%s, count=%d, reset=%t",
		customerID, result.WarningCount, req.ResetWarnings)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) decodeReason(w http.ResponseWriter, r *http.Request, route string) (string, bool) {
	var req WarnRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return "", false
	}
	if req.Reason == "" {
		handlers.RespondBadRequest(w, msgReasonRequired)
		return "", false
	}
	return req.Reason, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route, customerID string, err error) {
	switch {
	case errors.Is(err, customers.ErrUserNotFound):
		h.logger.Warn("%s - Customer not found: customer_id=%s", route, customerID)
		handlers.RespondNotFound(w, msgUserNotFound)

	case errors.Is(err, customers.ErrNotCustomer):
		h.logger.Warn("%s - Not a customer: user_id=%s", route, customerID)
		handlers.RespondBadRequest(w, msgNotCustomer)

	default:
		h.logger.Error("%s - Failed: customer_id=%s, error=%v", route, customerID, err)
		handlers.RespondInternalError(w)
	}
}

package booking_drafts

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
	"github.com/bestbuddies/grooming-service/internal/api/middleware"
	"github.com/bestbuddies/grooming-service/internal/infra/draftstore"
)

const (
	msgInvalidDraft  = "draft must be a JSON document"
	msgDraftTooLarge = "draft exceeds the size limit"
	msgDraftNotFound = "no saved draft"
)

// Handler serves the booking wizard draft endpoints. Drafts are opaque
// JSON: the server never interprets the wizard's form state.
type Handler struct {
	store  DraftStore
	logger Logger
}

func NewHandler(store DraftStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// HandleSave PUT /api/v1/bookings/draft
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	body, err := io.ReadAll(io.LimitReader(r.Body, draftstore.MaxDraftBytes+1))
	if err != nil {
		h.logger.Warn("PUT /bookings/draft - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraft)
		return
	}
	if !json.Valid(body) {
		h.logger.Warn("PUT /bookings/draft - Invalid JSON: user_id=%s", userID)
		handlers.RespondBadRequest(w, msgInvalidDraft)
		return
	}

	if err := h.store.Save(r.Context(), userID, json.RawMessage(body)); err != nil {
		if errors.Is(err, draftstore.ErrDraftTooLarge) {
			h.logger.Warn("PUT /bookings/draft - Draft too large: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgDraftTooLarge)
			return
		}
		h.logger.Error("PUT /bookings/draft - Failed: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleGet GET /api/v1/bookings/draft
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	draft, err := h.store.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, draftstore.ErrDraftNotFound) {
			handlers.RespondNotFound(w, msgDraftNotFound)
			return
		}
		h.logger.Error("GET /bookings/draft - Failed: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(draft)
}

// HandleDelete DELETE /api/v1/bookings/draft
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	if err := h.store.Delete(r.Context(), userID); err != nil {
		h.logger.Error("DELETE /bookings/draft - Failed: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

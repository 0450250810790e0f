package get_featured_gallery

import (
	"net/http"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
)

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

// Handle GET /api/v1/gallery/featured
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetFeatured(r.Context())
	if err != nil {
		h.logger.Error("GET /gallery/featured - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

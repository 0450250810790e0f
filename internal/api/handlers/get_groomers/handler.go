package get_groomers

import (
	"net/http"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
)

type Handler struct {
	service GroomerService
	logger  Logger
}

func NewHandler(service GroomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/groomers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /groomers - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

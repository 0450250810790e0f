package get_packages

import (
	"net/http"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
)

type Handler struct {
	catalog CatalogRepository
	logger  Logger
}

func NewHandler(catalog CatalogRepository, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packages, err := h.catalog.List(r.Context())
	if err != nil {
		h.logger.Error("GET /packages - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toCatalogResponse(packages))
}

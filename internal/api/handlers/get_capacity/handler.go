package get_capacity

import (
	"errors"
	"net/http"
	"time"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
	"github.com/bestbuddies/grooming-service/internal/domain"
	usecase "github.com/bestbuddies/grooming-service/internal/usecase/get_day_capacity"
)

const (
	msgInvalidRange = "start and end must be dates in YYYY-MM-DD format"
	msgRangeTooWide = "date range is too wide"
)

type Handler struct {
	useCase GetDayCapacityUseCase
	logger  Logger
}

func NewHandler(useCase GetDayCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/capacity?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := time.Parse(domain.DateFormat, query.Get("start"))
	if err != nil {
		h.logger.Warn("GET /capacity - Invalid start date: %s", query.Get("start"))
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}
	end, err := time.Parse(domain.DateFormat, query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /capacity - Invalid end date: %s", query.Get("end"))
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			h.logger.Warn("GET /capacity - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, usecase.ErrRangeTooWide):
			h.logger.Warn("GET /capacity - Range too wide: start=%s, end=%s",
				start.Format(domain.DateFormat), end.Format(domain.DateFormat))
			handlers.RespondBadRequest(w, msgRangeTooWide)

		default:
			h.logger.Error("GET /capacity - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

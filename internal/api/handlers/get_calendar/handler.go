package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TransportService/internal/api/handlers"
	"github.com/m04kA/SMC-TransportService/internal/domain"
	calendarService "github.com/m04kA/SMC-TransportService/internal/service/calendar"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "некорректный диапазон дат"
)

type Handler struct {
	index  CalendarIndex
	logger Logger
}

func NewHandler(index CalendarIndex, logger Logger) *Handler {
	return &Handler{
		index:  index,
		logger: logger,
	}
}

// Handle GET /api/v1/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, q.Get("from"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := time.Parse(domain.DateFormat, q.Get("to"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.index.Query(from, to)
	if err != nil {
		switch {
		case errors.Is(err, calendarService.ErrInvalidRange):
			h.logger.Warn("GET /calendar - Invalid range: from=%s, to=%s", q.Get("from"), q.Get("to"))
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /calendar - Failed to query index: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromIndexResult(result))
}

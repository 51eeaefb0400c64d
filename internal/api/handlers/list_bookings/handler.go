package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TransportService/internal/api/handlers"
	"github.com/m04kA/SMC-TransportService/internal/domain"
	bookingsService "github.com/m04kA/SMC-TransportService/internal/service/bookings"
	"github.com/m04kA/SMC-TransportService/internal/service/bookings/models"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNoActiveSeason = "нет активного сезона"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, q.Get("from"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := time.Parse(domain.DateFormat, q.Get("to"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListByPickupRange(r.Context(), &models.PickupRangeRequest{From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookingsService.ErrNoActiveSeason):
			h.logger.Warn("GET /bookings - No active season")
			handlers.RespondConflict(w, msgNoActiveSeason)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - %d bookings returned", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

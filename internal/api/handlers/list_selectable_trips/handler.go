package list_selectable_trips

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TransportService/internal/api/handlers"
	"github.com/m04kA/SMC-TransportService/internal/domain"
	tripsService "github.com/m04kA/SMC-TransportService/internal/service/trips"
	"github.com/m04kA/SMC-TransportService/internal/service/trips/models"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidCount   = "некорректное значение vehicleCount"
	msgInvalidWeight  = "некорректное значение vehicleWeight"
	msgNoActiveSeason = "нет активного сезона"
)

type Handler struct {
	service TripsService
	logger  Logger
}

func NewHandler(service TripsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// TripResponse HTTP response model
type TripResponse struct {
	ID            string  `json:"id"`
	TruckID       string  `json:"truckId"`
	LoadNumber    int     `json:"loadNumber"`
	DepartureDate string  `json:"departureDate"`
	ArrivalDate   string  `json:"arrivalDate"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	RemLoadCap    float64 `json:"remLoadCap"`
	RemCarCap     int     `json:"remCarCap"`
	Season        string  `json:"season"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Trips []TripResponse `json:"trips"`
}

// Handle GET /api/v1/trips/selectable
// Query: origin, pickup, arrival, vehicleCount, vehicleWeight
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pickup, err := time.Parse(domain.DateFormat, q.Get("pickup"))
	if err != nil {
		h.logger.Warn("GET /trips/selectable - Invalid pickup date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	arrival, err := time.Parse(domain.DateFormat, q.Get("arrival"))
	if err != nil {
		h.logger.Warn("GET /trips/selectable - Invalid arrival date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	count, err := strconv.Atoi(q.Get("vehicleCount"))
	if err != nil {
		h.logger.Warn("GET /trips/selectable - Invalid vehicle count: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCount)
		return
	}
	weight, err := strconv.ParseFloat(q.Get("vehicleWeight"), 64)
	if err != nil {
		h.logger.Warn("GET /trips/selectable - Invalid vehicle weight: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeight)
		return
	}

	result, err := h.service.ListSelectable(r.Context(), &models.SelectableTripsRequest{
		Origin:         q.Get("origin"),
		DesiredPickup:  pickup,
		DesiredArrival: arrival,
		VehicleCount:   count,
		VehicleWeight:  weight,
	})
	if err != nil {
		switch {
		case errors.Is(err, tripsService.ErrInvalidInput):
			h.logger.Warn("GET /trips/selectable - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, tripsService.ErrNoActiveSeason):
			h.logger.Warn("GET /trips/selectable - No active season")
			handlers.RespondConflict(w, msgNoActiveSeason)

		default:
			h.logger.Error("GET /trips/selectable - Failed to list trips: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := ListResponse{Trips: make([]TripResponse, 0, len(result))}
	for _, t := range result {
		resp.Trips = append(resp.Trips, TripResponse{
			ID:            t.ID,
			TruckID:       t.TruckID,
			LoadNumber:    t.LoadNumber,
			DepartureDate: t.DepartureDate.Format(domain.DateFormat),
			ArrivalDate:   t.ArrivalDate.Format(domain.DateFormat),
			Origin:        t.Origin,
			Destination:   t.Destination,
			RemLoadCap:    t.RemLoadCap,
			RemCarCap:     t.RemCarCap,
			Season:        t.Season,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

package get_trip

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TransportService/internal/api/handlers"
	"github.com/m04kA/SMC-TransportService/internal/domain"
	tripsService "github.com/m04kA/SMC-TransportService/internal/service/trips"
	"github.com/m04kA/SMC-TransportService/internal/service/trips/models"
)

const msgTripNotFound = "рейс не найден"

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
	DelayDate     *string `json:"delayDate,omitempty"`
	Season        string  `json:"season"`
	PaidBookings  int     `json:"paidBookings"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.TripResponse) *TripResponse {
	var delay *string
	if resp.DelayDate != nil {
		d := resp.DelayDate.Format(domain.DateFormat)
		delay = &d
	}

	return &TripResponse{
		ID:            resp.ID,
		TruckID:       resp.TruckID,
		LoadNumber:    resp.LoadNumber,
		DepartureDate: resp.DepartureDate.Format(domain.DateFormat),
		ArrivalDate:   resp.ArrivalDate.Format(domain.DateFormat),
		Origin:        resp.Origin,
		Destination:   resp.Destination,
		RemLoadCap:    resp.RemLoadCap,
		RemCarCap:     resp.RemCarCap,
		DelayDate:     delay,
		Season:        resp.Season,
		PaidBookings:  resp.PaidBookings,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}

// Handle GET /api/v1/trucks/{truckId}/trips/{tripId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	truckID := vars["truckId"]
	tripID := vars["tripId"]

	result, err := h.service.GetByID(r.Context(), truckID, tripID)
	if err != nil {
		switch {
		case errors.Is(err, tripsService.ErrTripNotFound):
			h.logger.Warn("GET /trucks/%s/trips/%s - Trip not found", truckID, tripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		default:
			h.logger.Error("GET /trucks/%s/trips/%s - Failed to get trip: %v", truckID, tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

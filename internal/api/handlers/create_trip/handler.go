package create_trip

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TransportService/internal/api/handlers"
	tripsService "github.com/m04kA/SMC-TransportService/internal/service/trips"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTruckNotFound      = "грузовик не найден"
	msgNoActiveSeason     = "нет активного сезона"
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

// Handle POST /api/v1/trucks/{truckId}/trips
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	truckID := mux.Vars(r)["truckId"]

	var req CreateTripRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trucks/%s/trips - Invalid request body: %v", truckID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(truckID)
	if err != nil {
		h.logger.Warn("POST /trucks/%s/trips - Failed to parse request: %v", truckID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, tripsService.ErrInvalidInput):
			h.logger.Warn("POST /trucks/%s/trips - Invalid input: %v", truckID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, tripsService.ErrTruckNotFound):
			h.logger.Warn("POST /trucks/%s/trips - Truck not found", truckID)
			handlers.RespondNotFound(w, msgTruckNotFound)

		case errors.Is(err, tripsService.ErrNoActiveSeason):
			h.logger.Warn("POST /trucks/%s/trips - No active season", truckID)
			handlers.RespondConflict(w, msgNoActiveSeason)

		default:
			h.logger.Error("POST /trucks/%s/trips - Failed to create trip: %v", truckID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trucks/%s/trips - Trip created successfully: trip_id=%s", truckID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}

package update_trip

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
	msgTripNotFound       = "рейс не найден"
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

// Handle PUT /api/v1/trucks/{truckId}/trips/{tripId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	truckID := vars["truckId"]
	tripID := vars["tripId"]

	var req UpdateTripRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /trucks/%s/trips/%s - Invalid request body: %v", truckID, tripID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(truckID, tripID)
	if err != nil {
		h.logger.Warn("PUT /trucks/%s/trips/%s - Failed to parse request: %v", truckID, tripID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Update(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, tripsService.ErrInvalidInput):
			h.logger.Warn("PUT /trucks/%s/trips/%s - Invalid input: %v", truckID, tripID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, tripsService.ErrTripNotFound):
			h.logger.Warn("PUT /trucks/%s/trips/%s - Trip not found", truckID, tripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		default:
			h.logger.Error("PUT /trucks/%s/trips/%s - Failed to update trip: %v", truckID, tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /trucks/%s/trips/%s - Trip updated successfully", truckID, tripID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

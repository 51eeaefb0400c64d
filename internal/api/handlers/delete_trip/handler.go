package delete_trip

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TransportService/internal/api/handlers"
	deleteTrip "github.com/m04kA/SMC-TransportService/internal/usecase/delete_trip"
)

const msgTripNotFound = "рейс не найден"

type Handler struct {
	useCase DeleteTripUseCase
	logger  Logger
}

func NewHandler(useCase DeleteTripUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/trucks/{truckId}/trips/{tripId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	truckID := vars["truckId"]
	tripID := vars["tripId"]

	result, err := h.useCase.Execute(r.Context(), truckID, tripID)
	if err != nil {
		switch {
		case errors.Is(err, deleteTrip.ErrInvalidInput):
			h.logger.Warn("DELETE /trucks/%s/trips/%s - Invalid input: %v", truckID, tripID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, deleteTrip.ErrTripNotFound):
			h.logger.Warn("DELETE /trucks/%s/trips/%s - Trip not found", truckID, tripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		default:
			h.logger.Error("DELETE /trucks/%s/trips/%s - Failed to delete trip: %v", truckID, tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /trucks/%s/trips/%s - Trip deleted: status=%s, bookings_deleted=%d, bookings_failed=%d",
		truckID, tripID, result.Status, len(result.DeletedBookings), len(result.FailedBookings))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TransportService/internal/api/handlers"
	deleteBooking "github.com/m04kA/SMC-TransportService/internal/usecase/delete_booking"
)

const (
	msgBookingNotFound = "бронирование не найдено"
	msgStaleRead       = "данные временно недоступны, повторите запрос"
	msgRestoreFailed   = "бронирование удалено, но возврат емкости рейсу не выполнен"
)

type Handler struct {
	useCase DeleteBookingUseCase
	logger  Logger
}

func NewHandler(useCase DeleteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	if err := h.useCase.Execute(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, deleteBooking.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/%s - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, deleteBooking.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/%s - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, deleteBooking.ErrStaleCapacityRead):
			h.logger.Warn("DELETE /bookings/%s - Stale read", bookingID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStaleRead)

		case errors.Is(err, deleteBooking.ErrTripWriteFailed):
			h.logger.Error("DELETE /bookings/%s - Trip restore failed: %v", bookingID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgRestoreFailed)

		default:
			h.logger.Error("DELETE /bookings/%s - Failed to delete booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/%s - Booking deleted successfully", bookingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

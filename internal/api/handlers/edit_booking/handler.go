package edit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TransportService/internal/api/handlers"
	editBooking "github.com/m04kA/SMC-TransportService/internal/usecase/edit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBookingNotFound    = "бронирование не найдено"
	msgTripNotFound       = "рейс не найден"
	msgCapacityExceeded   = "емкость рейса исчерпана"
	msgRouteMismatch      = "рейс не подходит по маршруту"
	msgDateWindow         = "рейс не попадает в окно дат"
	msgStaleRead          = "данные временно недоступны, повторите запрос"
	msgPartialWrite       = "перенос бронирования выполнен не полностью"
)

type Handler struct {
	useCase EditBookingUseCase
	logger  Logger
}

func NewHandler(useCase EditBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req EditBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%s - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/%s - Failed to parse request: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, editBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/%s - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, editBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/%s - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, editBooking.ErrTripNotFound):
			h.logger.Warn("PUT /bookings/%s - Trip not found: trip_id=%s", bookingID, req.TripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		case errors.Is(err, editBooking.ErrCapacityExceeded):
			h.logger.Warn("PUT /bookings/%s - Capacity exceeded: trip_id=%s", bookingID, req.TripID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, editBooking.ErrRouteMismatch):
			h.logger.Warn("PUT /bookings/%s - Route mismatch: trip_id=%s, from=%s", bookingID, req.TripID, req.From)
			handlers.RespondConflict(w, msgRouteMismatch)

		case errors.Is(err, editBooking.ErrDateWindowViolation):
			h.logger.Warn("PUT /bookings/%s - Date window violation: trip_id=%s", bookingID, req.TripID)
			handlers.RespondConflict(w, msgDateWindow)

		case errors.Is(err, editBooking.ErrStaleCapacityRead):
			h.logger.Warn("PUT /bookings/%s - Stale read: trip_id=%s", bookingID, req.TripID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStaleRead)

		case errors.Is(err, editBooking.ErrPartialWrite):
			h.logger.Error("PUT /bookings/%s - Partial write: %v", bookingID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPartialWrite)

		default:
			h.logger.Error("PUT /bookings/%s - Failed to edit booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/%s - Booking updated successfully: trip_id=%s", bookingID, result.TripID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

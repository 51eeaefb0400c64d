package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TransportService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-TransportService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCustomerNotFound   = "клиент не найден"
	msgTripNotFound       = "рейс не найден"
	msgNoActiveSeason     = "нет активного сезона"
	msgCapacityExceeded   = "емкость рейса исчерпана"
	msgRouteMismatch      = "рейс не подходит по маршруту"
	msgDateWindow         = "рейс не попадает в окно дат"
	msgStaleRead          = "данные рейса временно недоступны, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: customer_id=%s, error=%v", req.CustomerID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%s", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrTripNotFound):
			h.logger.Warn("POST /bookings - Trip not found: trip_id=%s", req.TripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		case errors.Is(err, createBooking.ErrNoActiveSeason):
			h.logger.Warn("POST /bookings - No active season: customer_id=%s", req.CustomerID)
			handlers.RespondConflict(w, msgNoActiveSeason)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: trip_id=%s, customer_id=%s", req.TripID, req.CustomerID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrRouteMismatch):
			h.logger.Warn("POST /bookings - Route mismatch: trip_id=%s, from=%s", req.TripID, req.From)
			handlers.RespondConflict(w, msgRouteMismatch)

		case errors.Is(err, createBooking.ErrDateWindowViolation):
			h.logger.Warn("POST /bookings - Date window violation: trip_id=%s", req.TripID)
			handlers.RespondConflict(w, msgDateWindow)

		case errors.Is(err, createBooking.ErrStaleCapacityRead):
			h.logger.Warn("POST /bookings - Stale capacity read: trip_id=%s", req.TripID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStaleRead)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%s, error=%v",
				req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, customer_id=%s, trip_id=%s",
		result.ID, req.CustomerID, req.TripID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

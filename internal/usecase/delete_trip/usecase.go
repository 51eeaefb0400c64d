package delete_trip

import (
	"context"
	"errors"
	"fmt"

	bookingsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/bookings"
	tripsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/trips"
)

// UseCase use case каскадного удаления рейса
// Сначала удаляется сам рейс, затем его бронирования по одному. Емкость
// не возвращается: леджер умирает вместе с рейсом. Сбой на отдельном
// бронировании не останавливает каскад, итог по каждому попадает в Response
type UseCase struct {
	tripRepo    TripRepository
	bookingRepo BookingRepository
	calendar    CalendarIndex
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tripRepo TripRepository,
	bookingRepo BookingRepository,
	calendar CalendarIndex,
	logger Logger,
) *UseCase {
	return &UseCase{
		tripRepo:    tripRepo,
		bookingRepo: bookingRepo,
		calendar:    calendar,
		logger:      logger,
	}
}

// Execute выполняет каскадное удаление рейса
func (uc *UseCase) Execute(ctx context.Context, truckID, tripID string) (*Response, error) {
	uc.logger.Info("DeleteTrip: truck=%s, trip=%s", truckID, tripID)

	// 1. Валидация входных данных
	if truckID == "" {
		return nil, fmt.Errorf("%w: truckId is required", ErrInvalidInput)
	}
	if tripID == "" {
		return nil, fmt.Errorf("%w: tripId is required", ErrInvalidInput)
	}

	// 2. Удаление рейса, первая запись каскада
	if err := uc.tripRepo.Delete(ctx, truckID, tripID); err != nil {
		if errors.Is(err, tripsRepo.ErrTripNotFound) {
			uc.logger.Warn("DeleteTrip: trip id=%s not found for truck=%s", tripID, truckID)
			return nil, ErrTripNotFound
		}
		uc.logger.Error("DeleteTrip: failed to delete trip id=%s: %v", tripID, err)
		return nil, fmt.Errorf("%w: %v", ErrTripWriteFailed, err)
	}
	uc.calendar.RemoveTrip(tripID)

	// 3. Список зависимых бронирований
	// Сбой чтения прерывает только этот шаг: рейс уже удален, бронирования
	// остаются висячими и попадают в частичный результат
	resp := &Response{TripID: tripID, Status: StatusCompleted}
	dependents, err := uc.bookingRepo.GetByTripID(ctx, tripID)
	if err != nil {
		uc.logger.Error("DeleteTrip: trip id=%s deleted but failed to list bookings: %v", tripID, err)
		resp.Status = StatusPartiallyFailed
		resp.FailedBookings = append(resp.FailedBookings, FailedItem{
			Reason: fmt.Sprintf("failed to list dependent bookings: %v", err),
		})
		return resp, nil
	}

	// 4. Удаление зависимых бронирований, по одному и до конца
	for _, booking := range dependents {
		if err := uc.bookingRepo.Delete(ctx, booking.ID); err != nil {
			if errors.Is(err, bookingsRepo.ErrBookingNotFound) {
				// Кто-то успел удалить раньше, цель каскада достигнута
				resp.DeletedBookings = append(resp.DeletedBookings, booking.ID)
				continue
			}
			uc.logger.Error("DeleteTrip: failed to delete booking id=%s: %v", booking.ID, err)
			resp.FailedBookings = append(resp.FailedBookings, FailedItem{
				BookingID: booking.ID,
				Reason:    err.Error(),
			})
			continue
		}
		resp.DeletedBookings = append(resp.DeletedBookings, booking.ID)
	}
	if len(resp.FailedBookings) > 0 {
		resp.Status = StatusPartiallyFailed
	}

	uc.logger.Info("DeleteTrip: trip id=%s deleted, bookings deleted=%d, failed=%d",
		tripID, len(resp.DeletedBookings), len(resp.FailedBookings))
	return resp, nil
}

package delete_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/infra/docstore"
	bookingsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/bookings"
	tripsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/trips"
)

// UseCase use case удаления бронирования
// Порядок записей: сначала удаляется бронирование, затем его рейсу
// возвращается емкость. Сбой возврата не восстанавливает бронирование
type UseCase struct {
	bookingRepo   BookingRepository
	tripRepo      TripRepository
	calendar      CalendarIndex
	paidThreshold float64
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tripRepo TripRepository,
	calendar CalendarIndex,
	paidThreshold float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		tripRepo:      tripRepo,
		calendar:      calendar,
		paidThreshold: paidThreshold,
		logger:        logger,
	}
}

// Execute выполняет пайплайн удаления бронирования
func (uc *UseCase) Execute(ctx context.Context, bookingID string) error {
	uc.logger.Info("DeleteBooking: booking=%s", bookingID)

	// 1. Валидация входных данных
	if bookingID == "" {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	// 2. Текущее состояние бронирования: от него считается возврат емкости
	booking, source, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingsRepo.ErrBookingNotFound) {
			uc.logger.Warn("DeleteBooking: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		uc.logger.Error("DeleteBooking: failed to get booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	if booking.IsAssigned() && source == docstore.SourceCache {
		uc.logger.Warn("DeleteBooking: booking id=%s read from cache, rejecting", bookingID)
		return ErrStaleCapacityRead
	}

	// 3. Рейс бронирования: отсутствие терпимо, возврата емкости не будет
	var trip *domain.Trip
	if booking.IsAssigned() {
		t, tripSource, err := uc.tripRepo.GetByID(ctx, booking.TruckID, booking.TripID)
		switch {
		case errors.Is(err, tripsRepo.ErrTripNotFound):
			uc.logger.Warn("DeleteBooking: trip id=%s gone, skipping restoration", booking.TripID)
		case err != nil:
			uc.logger.Error("DeleteBooking: failed to get trip id=%s: %v", booking.TripID, err)
			return fmt.Errorf("%w: failed to get trip: %v", ErrInternal, err)
		case tripSource == docstore.SourceCache:
			uc.logger.Warn("DeleteBooking: trip id=%s read from cache, rejecting restoration", booking.TripID)
			return ErrStaleCapacityRead
		default:
			trip = t
		}
	}

	// 4. Удаление бронирования, первая запись пайплайна
	if err := uc.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingsRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		uc.logger.Error("DeleteBooking: failed to delete booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: %v", ErrBookingWriteFailed, err)
	}
	uc.calendar.RemoveBooking(booking.TripID, booking.ID)

	// 5. Возврат емкости рейсу, вторая запись пайплайна
	if trip != nil {
		restored := domain.ApplyRestoration(*trip, booking.VehicleIDs, booking.Customer)
		if booking.IsPaid(uc.paidThreshold) && restored.PaidBookings > 0 {
			restored.PaidBookings--
		}

		if err := uc.tripRepo.UpdateCapacity(ctx, restored.ID, restored.RemLoadCap, restored.RemCarCap, restored.PaidBookings); err != nil {
			// Бронирование уже удалено: откат не предусмотрен
			uc.logger.Error("DeleteBooking: booking id=%s deleted but trip id=%s restore failed: %v",
				bookingID, restored.ID, err)
			return fmt.Errorf("%w: trip id=%s: %v", ErrTripWriteFailed, restored.ID, err)
		}
		uc.calendar.UpsertTrip(restored)
	}

	uc.logger.Info("DeleteBooking: successfully deleted booking id=%s", bookingID)
	return nil
}

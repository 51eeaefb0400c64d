package edit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/infra/docstore"
	bookingsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/bookings"
	tripsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/trips"
)

// UseCase use case редактирования бронирования
// Пока рейс не меняется, правка сводится к перезаписи полей: леджер емкости
// не трогается даже при изменении набора автомобилей. Смена рейса запускает
// трехшаговый пайплайн: возврат емкости старому рейсу, списание с нового,
// запись бронирования. Шаги выполняются по порядку и без отката, сбой любого
// из них не отменяет остальные
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

// Execute выполняет пайплайн редактирования бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditBooking: booking=%s, trip=%s", req.BookingID, req.TripID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EditBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее состояние бронирования
	existing, bookingSource, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingsRepo.ErrBookingNotFound) {
			uc.logger.Warn("EditBooking: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("EditBooking: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if err := validateVehiclesInSnapshot(existing.Customer, req.VehicleIDs); err != nil {
		uc.logger.Warn("EditBooking: vehicle validation failed for booking=%s: %v", req.BookingID, err)
		return nil, err
	}

	tripChanged := req.TripID != existing.TripID || req.TruckID != existing.TruckID

	// 3. Правка без смены рейса: только перезапись полей, леджер не трогаем
	if !tripChanged {
		applyFields(existing, req)
		if err := uc.bookingRepo.Update(ctx, existing); err != nil {
			if errors.Is(err, bookingsRepo.ErrBookingNotFound) {
				return nil, ErrBookingNotFound
			}
			uc.logger.Error("EditBooking: failed to update booking id=%s: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
		uc.calendar.UpsertBooking(*existing)
		uc.logger.Info("EditBooking: successfully updated booking id=%s, trip unchanged", existing.ID)
		return fromDomainBooking(existing), nil
	}

	// 4. Смена рейса: движения по леджеру считаются от снимка бронирования,
	// устаревшие данные из кеша для этого не годятся
	if bookingSource == docstore.SourceCache {
		uc.logger.Warn("EditBooking: booking id=%s read from cache, rejecting trip change", req.BookingID)
		return nil, ErrStaleCapacityRead
	}

	wasPaid := existing.IsPaid(uc.paidThreshold)
	willBePaid := req.Paycheck.Amount >= uc.paidThreshold

	// 5. Новый рейс: проверка допустимости до каких-либо записей
	var newTrip *domain.Trip
	if req.TripID != "" {
		trip, source, err := uc.tripRepo.GetByID(ctx, req.TruckID, req.TripID)
		if err != nil {
			if errors.Is(err, tripsRepo.ErrTripNotFound) {
				uc.logger.Warn("EditBooking: trip id=%s not found for truck=%s", req.TripID, req.TruckID)
				return nil, ErrTripNotFound
			}
			uc.logger.Error("EditBooking: failed to get trip id=%s: %v", req.TripID, err)
			return nil, fmt.Errorf("%w: failed to get trip: %v", ErrInternal, err)
		}
		if source == docstore.SourceCache {
			uc.logger.Warn("EditBooking: trip id=%s read from cache, rejecting capacity check", req.TripID)
			return nil, ErrStaleCapacityRead
		}

		weight := domain.ConsumedWeight(existing.Customer, req.VehicleIDs)
		if err := validateEligibility(trip, req, weight, len(req.VehicleIDs)); err != nil {
			uc.logger.Warn("EditBooking: eligibility check failed for trip=%s: %v", req.TripID, err)
			return nil, err
		}
		newTrip = trip
	}

	// 6. Старый рейс: отсутствие терпимо, бронирование могло пережить свой рейс
	var oldTrip *domain.Trip
	if existing.IsAssigned() {
		trip, source, err := uc.tripRepo.GetByID(ctx, existing.TruckID, existing.TripID)
		switch {
		case errors.Is(err, tripsRepo.ErrTripNotFound):
			uc.logger.Warn("EditBooking: old trip id=%s gone, skipping restoration", existing.TripID)
		case err != nil:
			uc.logger.Error("EditBooking: failed to get old trip id=%s: %v", existing.TripID, err)
			return nil, fmt.Errorf("%w: failed to get old trip: %v", ErrInternal, err)
		case source == docstore.SourceCache:
			uc.logger.Warn("EditBooking: old trip id=%s read from cache, rejecting restoration", existing.TripID)
			return nil, ErrStaleCapacityRead
		default:
			oldTrip = trip
		}
	}

	// 7. Записи пайплайна: возврат старому рейсу, списание с нового,
	// перезапись бронирования. Каждый шаг выполняется независимо от исхода
	// предыдущих, сбои копятся и поднимаются одной ошибкой
	var failures []string

	if oldTrip != nil {
		restored := domain.ApplyRestoration(*oldTrip, existing.VehicleIDs, existing.Customer)
		if wasPaid && restored.PaidBookings > 0 {
			restored.PaidBookings--
		}
		if err := uc.tripRepo.UpdateCapacity(ctx, restored.ID, restored.RemLoadCap, restored.RemCarCap, restored.PaidBookings); err != nil {
			uc.logger.Error("EditBooking: failed to restore capacity on trip id=%s: %v", restored.ID, err)
			failures = append(failures, fmt.Sprintf("restore trip %s: %v", restored.ID, err))
		} else {
			uc.calendar.UpsertTrip(restored)
		}
	}

	if newTrip != nil {
		consumed := domain.ApplyConsumption(*newTrip, req.VehicleIDs, existing.Customer)
		if willBePaid {
			consumed.PaidBookings++
		}
		if err := uc.tripRepo.UpdateCapacity(ctx, consumed.ID, consumed.RemLoadCap, consumed.RemCarCap, consumed.PaidBookings); err != nil {
			uc.logger.Error("EditBooking: failed to consume capacity on trip id=%s: %v", consumed.ID, err)
			failures = append(failures, fmt.Sprintf("consume trip %s: %v", consumed.ID, err))
		} else {
			uc.calendar.UpsertTrip(consumed)
		}
	}

	oldTripID := existing.TripID
	applyFields(existing, req)
	if err := uc.bookingRepo.Update(ctx, existing); err != nil {
		uc.logger.Error("EditBooking: failed to update booking id=%s: %v", existing.ID, err)
		failures = append(failures, fmt.Sprintf("update booking %s: %v", existing.ID, err))
	} else {
		uc.calendar.RemoveBooking(oldTripID, existing.ID)
		uc.calendar.UpsertBooking(*existing)
	}

	if len(failures) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrPartialWrite, strings.Join(failures, "; "))
	}

	uc.logger.Info("EditBooking: successfully moved booking id=%s to trip=%s", existing.ID, existing.TripID)
	return fromDomainBooking(existing), nil
}

// applyFields переносит изменяемые поля запроса в бронирование
// Снимок клиента, сезон и время создания не меняются
func applyFields(b *domain.Booking, req *Request) {
	b.VehicleIDs = req.VehicleIDs
	b.Paycheck = req.Paycheck
	b.ArrivalAt = req.ArrivalAt
	b.PickupAt = req.PickupAt
	b.ArrivalWeek = domain.WeekOfYear(req.ArrivalAt)
	b.PickupWeek = domain.WeekOfYear(req.PickupAt)
	b.ArrivalAddress = req.ArrivalAddress
	b.PickupAddress = req.PickupAddress
	b.TruckID = req.TruckID
	b.TripID = req.TripID
	b.From = req.From
	b.To = req.To
	b.Notes = req.Notes
}

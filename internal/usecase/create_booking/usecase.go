package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/infra/docstore"
	customersRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/customers"
	seasonsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/seasons"
	tripsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/trips"
)

// UseCase use case создания бронирования
// Порядок записей несущий: сначала бронирование, затем списание емкости рейса.
// При сбое второй записи в хранилище остается бронирование без списания,
// эта ситуация поднимается наверх как ErrTripWriteFailed, а не глотается
type UseCase struct {
	bookingRepo   BookingRepository
	tripRepo      TripRepository
	customerRepo  CustomerRepository
	seasons       SeasonProvider
	calendar      CalendarIndex
	paidThreshold float64
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tripRepo TripRepository,
	customerRepo CustomerRepository,
	seasons SeasonProvider,
	calendar CalendarIndex,
	paidThreshold float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		tripRepo:      tripRepo,
		customerRepo:  customerRepo,
		seasons:       seasons,
		calendar:      calendar,
		paidThreshold: paidThreshold,
		logger:        logger,
	}
}

// Execute выполняет пайплайн создания бронирования
// Пайплайн последовательный, без транзакций и без отката: проверки
// допустимости выполняются до первой записи, записи идут строго по порядку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, vehicles=%d, trip=%s", req.CustomerID, len(req.VehicleIDs), req.TripID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Активный сезон
	season, err := uc.seasons.GetActive(ctx)
	if err != nil {
		if errors.Is(err, seasonsRepo.ErrNoActiveSeason) {
			uc.logger.Warn("CreateBooking: no active season")
			return nil, ErrNoActiveSeason
		}
		uc.logger.Error("CreateBooking: failed to get active season: %v", err)
		return nil, fmt.Errorf("%w: failed to get active season: %v", ErrInternal, err)
	}

	// 3. Клиент и снимок его автомобилей на момент бронирования
	customer, err := uc.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customersRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%s not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%s: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}
	snapshot := customer.Snapshot()

	if err := validateVehiclesInSnapshot(snapshot, req.VehicleIDs); err != nil {
		uc.logger.Warn("CreateBooking: vehicle validation failed for customer=%s: %v", req.CustomerID, err)
		return nil, err
	}

	weight := domain.ConsumedWeight(snapshot, req.VehicleIDs)
	count := len(req.VehicleIDs)

	// 4. Проверка допустимости выбранного рейса до каких-либо записей
	var trip *domain.Trip
	if req.TripID != "" {
		var source docstore.Source
		trip, source, err = uc.tripRepo.GetByID(ctx, req.TruckID, req.TripID)
		if err != nil {
			if errors.Is(err, tripsRepo.ErrTripNotFound) {
				uc.logger.Warn("CreateBooking: trip id=%s not found for truck=%s", req.TripID, req.TruckID)
				return nil, ErrTripNotFound
			}
			uc.logger.Error("CreateBooking: failed to get trip id=%s: %v", req.TripID, err)
			return nil, fmt.Errorf("%w: failed to get trip: %v", ErrInternal, err)
		}

		// Счетчики из кеша могли устареть, на их основании емкость не проверяем
		if source == docstore.SourceCache {
			uc.logger.Warn("CreateBooking: trip id=%s read from cache, rejecting capacity check", req.TripID)
			return nil, ErrStaleCapacityRead
		}

		if err := validateEligibility(trip, req, weight, count); err != nil {
			uc.logger.Warn("CreateBooking: eligibility check failed for trip=%s: %v", req.TripID, err)
			return nil, err
		}
	}

	// 5. Запись бронирования, первая запись пайплайна
	booking := &domain.Booking{
		Customer:       snapshot,
		VehicleIDs:     req.VehicleIDs,
		Paycheck:       req.Paycheck,
		ArrivalAt:      req.ArrivalAt,
		PickupAt:       req.PickupAt,
		ArrivalAddress: req.ArrivalAddress,
		PickupAddress:  req.PickupAddress,
		TruckID:        req.TruckID,
		TripID:         req.TripID,
		From:           req.From,
		To:             req.To,
		Notes:          req.Notes,
		Season:         season.Key(),
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to persist booking for customer=%s: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: %v", ErrBookingWriteFailed, err)
	}

	// 6. Списание емкости рейса, вторая запись пайплайна
	if trip != nil {
		updated := domain.ApplyConsumption(*trip, created.VehicleIDs, created.Customer)
		if created.IsPaid(uc.paidThreshold) {
			updated.PaidBookings++
		}

		if err := uc.tripRepo.UpdateCapacity(ctx, updated.ID, updated.RemLoadCap, updated.RemCarCap, updated.PaidBookings); err != nil {
			// Бронирование уже записано: списание не выполнено, откат не предусмотрен
			// Состоявшаяся запись бронирования попадает в индекс, несостоявшееся
			// списание не попадает
			uc.logger.Error("CreateBooking: booking id=%s persisted but trip id=%s capacity update failed: %v",
				created.ID, updated.ID, err)
			uc.calendar.UpsertBooking(*created)
			return nil, fmt.Errorf("%w: booking id=%s, trip id=%s: %v", ErrTripWriteFailed, created.ID, updated.ID, err)
		}

		uc.calendar.UpsertTrip(updated)
	}
	uc.calendar.UpsertBooking(*created)

	uc.logger.Info("CreateBooking: successfully created booking id=%s, trip=%s, weight=%.1f, count=%d",
		created.ID, created.TripID, weight, count)
	return fromDomainBooking(created), nil
}

package trips

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	seasonsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/seasons"
	tripsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/trips"
	trucksRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/trucks"
	"github.com/m04kA/SMC-TransportService/internal/service/trips/models"
)

// Service сервис для работы с рейсами
type Service struct {
	tripRepo  TripRepository
	truckRepo TruckRepository
	seasons   SeasonProvider
	calendar  CalendarIndex
	logger    Logger
}

// NewService создает новый экземпляр сервиса рейсов
func NewService(
	tripRepo TripRepository,
	truckRepo TruckRepository,
	seasons SeasonProvider,
	calendar CalendarIndex,
	logger Logger,
) *Service {
	return &Service{
		tripRepo:  tripRepo,
		truckRepo: truckRepo,
		seasons:   seasons,
		calendar:  calendar,
		logger:    logger,
	}
}

// Create создает рейс: счетчики емкости инициализируются
// номинальными емкостями владеющего грузовика
func (s *Service) Create(ctx context.Context, req *models.CreateTripRequest) (*models.TripResponse, error) {
	s.logger.Info("CreateTrip: truck=%s, load=%d, departure=%s",
		req.TruckID, req.LoadNumber, req.DepartureDate.Format(domain.DateFormat))

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateTrip: validation failed: %v", err)
		return nil, err
	}

	truck, err := s.truckRepo.GetByID(ctx, req.TruckID)
	if err != nil {
		if errors.Is(err, trucksRepo.ErrTruckNotFound) {
			s.logger.Warn("CreateTrip: truck id=%s not found", req.TruckID)
			return nil, ErrTruckNotFound
		}
		s.logger.Error("CreateTrip: failed to get truck id=%s: %v", req.TruckID, err)
		return nil, fmt.Errorf("%w: failed to get truck: %v", ErrInternal, err)
	}

	season, err := s.seasons.GetActive(ctx)
	if err != nil {
		if errors.Is(err, seasonsRepo.ErrNoActiveSeason) {
			s.logger.Warn("CreateTrip: no active season")
			return nil, ErrNoActiveSeason
		}
		s.logger.Error("CreateTrip: failed to get active season: %v", err)
		return nil, fmt.Errorf("%w: failed to get active season: %v", ErrInternal, err)
	}

	trip := &domain.Trip{
		TruckID:       truck.ID,
		LoadNumber:    req.LoadNumber,
		DepartureDate: req.DepartureDate,
		ArrivalDate:   req.ArrivalDate,
		Origin:        req.Origin,
		Destination:   req.Destination,
		RemLoadCap:    truck.LoadCapacity,
		RemCarCap:     truck.CarCapacity,
		DelayDate:     req.DelayDate,
		Season:        season.Key(),
	}

	created, err := s.tripRepo.Create(ctx, trip)
	if err != nil {
		s.logger.Error("CreateTrip: failed to create trip for truck=%s: %v", req.TruckID, err)
		return nil, fmt.Errorf("%w: failed to create trip: %v", ErrInternal, err)
	}

	s.calendar.UpsertTrip(*created)

	s.logger.Info("CreateTrip: successfully created trip id=%s, truck=%s, season=%s",
		created.ID, created.TruckID, created.Season)
	return models.FromDomainTrip(created), nil
}

// Update обновляет описательные поля рейса, включая дату задержки.
// Счетчики емкости и сезон не трогаются. Смена даты задержки переносит
// событие рейса в другой день календаря вместе с его бронированиями
func (s *Service) Update(ctx context.Context, req *models.UpdateTripRequest) (*models.TripResponse, error) {
	s.logger.Info("UpdateTrip: trip id=%s, truck=%s", req.TripID, req.TruckID)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("UpdateTrip: validation failed: %v", err)
		return nil, err
	}

	trip, _, err := s.tripRepo.GetByID(ctx, req.TruckID, req.TripID)
	if err != nil {
		if errors.Is(err, tripsRepo.ErrTripNotFound) {
			s.logger.Warn("UpdateTrip: trip id=%s not found for truck=%s", req.TripID, req.TruckID)
			return nil, ErrTripNotFound
		}
		s.logger.Error("UpdateTrip: failed to get trip id=%s: %v", req.TripID, err)
		return nil, fmt.Errorf("%w: failed to get trip: %v", ErrInternal, err)
	}

	trip.LoadNumber = req.LoadNumber
	trip.DepartureDate = req.DepartureDate
	trip.ArrivalDate = req.ArrivalDate
	trip.Origin = req.Origin
	trip.Destination = req.Destination
	trip.DelayDate = req.DelayDate

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		s.logger.Error("UpdateTrip: failed to update trip id=%s: %v", req.TripID, err)
		return nil, fmt.Errorf("%w: failed to update trip: %v", ErrInternal, err)
	}

	s.calendar.UpsertTrip(*trip)

	s.logger.Info("UpdateTrip: successfully updated trip id=%s, display date=%s",
		trip.ID, trip.DisplayDate().Format(domain.DateFormat))
	return models.FromDomainTrip(trip), nil
}

// GetByID получает рейс по паре (truckID, tripID)
func (s *Service) GetByID(ctx context.Context, truckID, tripID string) (*models.TripResponse, error) {
	s.logger.Info("GetTrip: fetching trip id=%s, truck=%s", tripID, truckID)

	trip, _, err := s.tripRepo.GetByID(ctx, truckID, tripID)
	if err != nil {
		if errors.Is(err, tripsRepo.ErrTripNotFound) {
			s.logger.Warn("GetTrip: trip id=%s not found for truck=%s", tripID, truckID)
			return nil, ErrTripNotFound
		}
		s.logger.Error("GetTrip: repository error for trip id=%s: %v", tripID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTrip(trip), nil
}

// ListSelectable возвращает рейсы активного сезона, подходящие для черновика
// бронирования. Правила подбора образуют контракт емкости:
// совпадение региона отправления (если указан), дата отправления внутри окна
// забор..прибытие, остаток мест и грузоподъемности вмещает выбранные автомобили
func (s *Service) ListSelectable(ctx context.Context, req *models.SelectableTripsRequest) ([]*models.TripResponse, error) {
	s.logger.Info("ListSelectable: origin=%s, pickup=%s, arrival=%s, count=%d, weight=%.1f",
		req.Origin, req.DesiredPickup.Format(domain.DateFormat), req.DesiredArrival.Format(domain.DateFormat),
		req.VehicleCount, req.VehicleWeight)

	if err := validateSelectableRequest(req); err != nil {
		s.logger.Warn("ListSelectable: validation failed: %v", err)
		return nil, err
	}

	season, err := s.seasons.GetActive(ctx)
	if err != nil {
		if errors.Is(err, seasonsRepo.ErrNoActiveSeason) {
			s.logger.Warn("ListSelectable: no active season")
			return nil, ErrNoActiveSeason
		}
		s.logger.Error("ListSelectable: failed to get active season: %v", err)
		return nil, fmt.Errorf("%w: failed to get active season: %v", ErrInternal, err)
	}

	trips, err := s.tripRepo.GetBySeason(ctx, season.Key())
	if err != nil {
		s.logger.Error("ListSelectable: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBySeason - repository error: %v", ErrInternal, err)
	}

	selectable := make([]*domain.Trip, 0, len(trips))
	for _, trip := range trips {
		if IsSelectable(trip, req.Origin, req.DesiredPickup, req.DesiredArrival, req.VehicleWeight, req.VehicleCount) {
			selectable = append(selectable, trip)
		}
	}

	s.logger.Info("ListSelectable: %d of %d trips selectable", len(selectable), len(trips))
	return models.FromDomainTripList(selectable), nil
}

// IsSelectable проверяет, что рейс может принять бронирование с указанными
// параметрами. Используется и подбором рейсов, и пайплайнами записи
func IsSelectable(trip *domain.Trip, origin string, pickup, arrival time.Time, weight float64, count int) bool {
	if origin != "" && trip.Origin != origin {
		return false
	}
	if !trip.DepartsWithin(pickup, arrival) {
		return false
	}
	return trip.CanFit(weight, count)
}

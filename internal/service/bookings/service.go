package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	seasonsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/seasons"
	"github.com/m04kA/SMC-TransportService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	seasons     SeasonProvider
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, seasons SeasonProvider, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		seasons:     seasons,
		logger:      logger,
	}
}

// ListByPickupRange возвращает бронирования активного сезона с датой забора
// внутри окна from..to, отсортированные по дате забора
func (s *Service) ListByPickupRange(ctx context.Context, req *models.PickupRangeRequest) ([]*models.BookingResponse, error) {
	s.logger.Info("ListBookings: pickup range %s..%s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if req.From.IsZero() || req.To.IsZero() {
		return nil, fmt.Errorf("%w: from and to dates are required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: to date must not be before from date", ErrInvalidInput)
	}

	season, err := s.seasons.GetActive(ctx)
	if err != nil {
		if errors.Is(err, seasonsRepo.ErrNoActiveSeason) {
			s.logger.Warn("ListBookings: no active season")
			return nil, ErrNoActiveSeason
		}
		s.logger.Error("ListBookings: failed to get active season: %v", err)
		return nil, fmt.Errorf("%w: failed to get active season: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByPickupRange(ctx, season.Key(), req.From, req.To)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByPickupRange - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: %d bookings in range", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

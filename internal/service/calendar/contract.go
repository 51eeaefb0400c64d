package calendar

import (
	"context"

	"github.com/m04kA/SMC-TransportService/internal/domain"
)

// TripRepository интерфейс репозитория рейсов
type TripRepository interface {
	GetBySeason(ctx context.Context, season string) ([]*domain.Trip, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetBySeason(ctx context.Context, season string) ([]*domain.Booking, error)
}

// SeasonProvider интерфейс получения активного сезона
type SeasonProvider interface {
	GetActive(ctx context.Context) (*domain.Season, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TransportService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByPickupRange(ctx context.Context, season string, from, to time.Time) ([]*domain.Booking, error)
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

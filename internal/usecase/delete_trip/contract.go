package delete_trip

import (
	"context"

	"github.com/m04kA/SMC-TransportService/internal/domain"
)

// TripRepository интерфейс репозитория рейсов
type TripRepository interface {
	Delete(ctx context.Context, truckID, tripID string) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByTripID(ctx context.Context, tripID string) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// CalendarIndex интерфейс календарного индекса
// Удаление события рейса уносит и все вложенные бронирования
type CalendarIndex interface {
	RemoveTrip(tripID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

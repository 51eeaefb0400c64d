package delete_booking

import (
	"context"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/infra/docstore"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, docstore.Source, error)
	Delete(ctx context.Context, id string) error
}

// TripRepository интерфейс репозитория рейсов
type TripRepository interface {
	GetByID(ctx context.Context, truckID, tripID string) (*domain.Trip, docstore.Source, error)
	UpdateCapacity(ctx context.Context, tripID string, remLoadCap float64, remCarCap int, paidBookings int) error
}

// CalendarIndex интерфейс календарного индекса
type CalendarIndex interface {
	UpsertTrip(trip domain.Trip)
	RemoveBooking(tripID, bookingID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package edit_booking

import (
	"context"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/infra/docstore"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, docstore.Source, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

// TripRepository интерфейс репозитория рейсов
type TripRepository interface {
	GetByID(ctx context.Context, truckID, tripID string) (*domain.Trip, docstore.Source, error)
	UpdateCapacity(ctx context.Context, tripID string, remLoadCap float64, remCarCap int, paidBookings int) error
}

// CalendarIndex интерфейс календарного индекса
// Бронирование живет внутри события своего рейса: при смене рейса его нужно
// снять со старого события и внести в новое
type CalendarIndex interface {
	UpsertTrip(trip domain.Trip)
	UpsertBooking(booking domain.Booking)
	RemoveBooking(tripID, bookingID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

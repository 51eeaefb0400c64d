package create_booking

import (
	"context"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/infra/docstore"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TripRepository интерфейс репозитория рейсов
type TripRepository interface {
	GetByID(ctx context.Context, truckID, tripID string) (*domain.Trip, docstore.Source, error)
	UpdateCapacity(ctx context.Context, tripID string, remLoadCap float64, remCarCap int, paidBookings int) error
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}

// SeasonProvider интерфейс получения активного сезона
type SeasonProvider interface {
	GetActive(ctx context.Context) (*domain.Season, error)
}

// CalendarIndex интерфейс календарного индекса
// Индекс производное состояние, сбой его правок не валит пайплайн
type CalendarIndex interface {
	UpsertTrip(trip domain.Trip)
	UpsertBooking(booking domain.Booking)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

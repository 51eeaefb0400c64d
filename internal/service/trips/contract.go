package trips

import (
	"context"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/infra/docstore"
)

// TripRepository интерфейс репозитория рейсов
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	GetByID(ctx context.Context, truckID, tripID string) (*domain.Trip, docstore.Source, error)
	GetBySeason(ctx context.Context, season string) ([]*domain.Trip, error)
	Update(ctx context.Context, trip *domain.Trip) error
}

// TruckRepository интерфейс репозитория грузовиков
type TruckRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Truck, error)
}

// SeasonProvider интерфейс получения активного сезона
type SeasonProvider interface {
	GetActive(ctx context.Context) (*domain.Season, error)
}

// CalendarIndex интерфейс календарного индекса
type CalendarIndex interface {
	UpsertTrip(trip domain.Trip)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_trip

import (
	"context"

	"github.com/m04kA/SMC-TransportService/internal/service/trips/models"
)

type TripsService interface {
	GetByID(ctx context.Context, truckID, tripID string) (*models.TripResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

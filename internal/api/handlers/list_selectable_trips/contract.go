package list_selectable_trips

import (
	"context"

	"github.com/m04kA/SMC-TransportService/internal/service/trips/models"
)

type TripsService interface {
	ListSelectable(ctx context.Context, req *models.SelectableTripsRequest) ([]*models.TripResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

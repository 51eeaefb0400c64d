package delete_trip

import (
	"context"

	deleteTrip "github.com/m04kA/SMC-TransportService/internal/usecase/delete_trip"
)

type DeleteTripUseCase interface {
	Execute(ctx context.Context, truckID, tripID string) (*deleteTrip.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

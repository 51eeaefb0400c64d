package list_bookings

import (
	"context"

	"github.com/m04kA/SMC-TransportService/internal/service/bookings/models"
)

type BookingsService interface {
	ListByPickupRange(ctx context.Context, req *models.PickupRangeRequest) ([]*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

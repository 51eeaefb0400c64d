package delete_booking

import "context"

type DeleteBookingUseCase interface {
	Execute(ctx context.Context, bookingID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

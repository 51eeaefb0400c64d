package delete_customer

import (
	"context"

	"github.com/m04kA/SMC-TransportService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	Delete(ctx context.Context, id string) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByCustomerID(ctx context.Context, customerID string) ([]*domain.Booking, error)
}

// BookingDeleter удаляет одно бронирование по полному жизненному циклу,
// с возвратом емкости его рейсу
type BookingDeleter interface {
	Execute(ctx context.Context, bookingID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

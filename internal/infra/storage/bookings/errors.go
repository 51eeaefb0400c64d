package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.repository: booking not found")

	// ErrReadFailed возвращается, когда чтение не удалось ни из основного источника, ни из кеша
	ErrReadFailed = errors.New("bookings.repository: read failed")

	// ErrWriteFailed возвращается при сбое записи в основной источник
	ErrWriteFailed = errors.New("bookings.repository: write failed")
)

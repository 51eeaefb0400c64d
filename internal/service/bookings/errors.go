package bookings

import "errors"

var (
	// ErrNoActiveSeason возвращается, когда нет активного сезона
	ErrNoActiveSeason = errors.New("bookings.service: no active season")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)

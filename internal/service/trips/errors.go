package trips

import "errors"

var (
	// ErrTripNotFound возвращается, когда рейс не найден
	ErrTripNotFound = errors.New("trips.service: trip not found")

	// ErrTruckNotFound возвращается, когда грузовик не найден
	ErrTruckNotFound = errors.New("trips.service: truck not found")

	// ErrNoActiveSeason возвращается, когда нет активного сезона
	ErrNoActiveSeason = errors.New("trips.service: no active season")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("trips.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("trips.service: internal error")
)

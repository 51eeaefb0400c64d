package trips

import "errors"

var (
	// ErrTripNotFound возвращается, когда рейс не найден
	ErrTripNotFound = errors.New("trips.repository: trip not found")

	// ErrReadFailed возвращается, когда чтение не удалось ни из основного источника, ни из кеша
	ErrReadFailed = errors.New("trips.repository: read failed")

	// ErrWriteFailed возвращается при сбое записи в основной источник
	ErrWriteFailed = errors.New("trips.repository: write failed")
)

package delete_trip

import "errors"

var (
	// ErrTripNotFound возвращается, когда рейс не найден
	ErrTripNotFound = errors.New("delete_trip: trip not found")

	// ErrTripWriteFailed возвращается при сбое удаления рейса
	// Каскад не запускается: зависимые бронирования не тронуты
	ErrTripWriteFailed = errors.New("delete_trip: failed to delete trip")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_trip: invalid input data")
)

package domain

// Форматы дат
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Значения по умолчанию
const (
	// DefaultPaidThreshold порог суммы чека для учета бронирования в Trip.PaidBookings
	DefaultPaidThreshold = 100.0
)

// Ограничения валидации
const (
	MaxNotesLength        = 500
	MaxVehiclesPerBooking = 10
)

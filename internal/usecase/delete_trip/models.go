package delete_trip

// Статусы каскадного удаления
const (
	StatusCompleted       = "completed"
	StatusPartiallyFailed = "partially_failed"
)

// FailedItem бронирование, которое не удалось удалить в каскаде
type FailedItem struct {
	BookingID string
	Reason    string
}

// Response итог каскадного удаления рейса
// Рейс к этому моменту удален всегда; списки описывают судьбу зависимых
// бронирований
type Response struct {
	TripID          string
	Status          string
	DeletedBookings []string
	FailedBookings  []FailedItem
}

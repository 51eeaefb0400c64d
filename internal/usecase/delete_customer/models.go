package delete_customer

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

// Response итог каскадного удаления клиента
// Клиент к этому моменту удален всегда; бронирования проходят полный
// жизненный цикл удаления, их рейсы получают емкость обратно
type Response struct {
	CustomerID      string
	Status          string
	DeletedBookings []string
	FailedBookings  []FailedItem
}

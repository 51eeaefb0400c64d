package domain

import "time"

// CalendarEvent производное событие календаря: рейс плюс его текущие бронирования
// Не хранится отдельно: строится из Trip и Booking и перестраивается при их изменении
type CalendarEvent struct {
	ID       string
	Trip     Trip
	Bookings []Booking
}

// CalendarEventID возвращает синтетический идентификатор события для рейса
func CalendarEventID(tripID string) string {
	return "trip-" + tripID
}

// DateKey возвращает ключ даты вида YYYY-MM-DD в локальном времени
func DateKey(t time.Time) string {
	return t.Format(DateFormat)
}

package delete_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("delete_booking: booking not found")

	// ErrStaleCapacityRead возвращается, когда бронирование или его рейс
	// прочитаны из кеша: сумма возврата емкости считается от снимка
	// бронирования, устаревшие данные для этого не годятся
	ErrStaleCapacityRead = errors.New("delete_booking: stale read, retry later")

	// ErrBookingWriteFailed возвращается при сбое удаления бронирования
	// Состояние не изменено: удаление бронирования идет первым в пайплайне
	ErrBookingWriteFailed = errors.New("delete_booking: failed to delete booking")

	// ErrTripWriteFailed возвращается, когда бронирование удалено, а возврат
	// емкости рейсу не прошел: бронирование не восстанавливается, рейс остался
	// с заниженным остатком
	ErrTripWriteFailed = errors.New("delete_booking: booking deleted but trip capacity restore failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_booking: internal error")
)

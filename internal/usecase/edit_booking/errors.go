package edit_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("edit_booking: booking not found")

	// ErrTripNotFound возвращается, когда новый рейс не найден
	ErrTripNotFound = errors.New("edit_booking: trip not found")

	// ErrCapacityExceeded возвращается, когда автомобили не помещаются
	// в остаток емкости нового рейса
	ErrCapacityExceeded = errors.New("edit_booking: trip capacity exceeded")

	// ErrRouteMismatch возвращается, когда регион отправления нового рейса
	// не совпадает с запрошенным маршрутом
	ErrRouteMismatch = errors.New("edit_booking: trip origin does not match requested route")

	// ErrDateWindowViolation возвращается, когда дата отправления нового рейса
	// не попадает в окно забор..прибытие клиента
	ErrDateWindowViolation = errors.New("edit_booking: trip departure is outside the requested window")

	// ErrStaleCapacityRead возвращается, когда рейс или бронирование прочитаны
	// из кеша при смене рейса: устаревшие данные не могут быть основанием
	// для движений по леджеру емкости
	ErrStaleCapacityRead = errors.New("edit_booking: stale read, retry later")

	// ErrPartialWrite возвращается, когда часть записей пайплайна смены рейса
	// не прошла: выполненные шаги не откатываются, детали в тексте ошибки
	ErrPartialWrite = errors.New("edit_booking: some capacity writes failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("edit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("edit_booking: internal error")
)

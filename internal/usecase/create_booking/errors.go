package create_booking

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrTripNotFound возвращается, когда выбранный рейс не найден
	ErrTripNotFound = errors.New("create_booking: trip not found")

	// ErrNoActiveSeason возвращается, когда нет активного сезона
	ErrNoActiveSeason = errors.New("create_booking: no active season")

	// ErrCapacityExceeded возвращается, когда выбранные автомобили не помещаются
	// в остаток емкости рейса (по весу или количеству)
	ErrCapacityExceeded = errors.New("create_booking: trip capacity exceeded")

	// ErrRouteMismatch возвращается, когда регион отправления рейса
	// не совпадает с запрошенным маршрутом
	ErrRouteMismatch = errors.New("create_booking: trip origin does not match requested route")

	// ErrDateWindowViolation возвращается, когда дата отправления рейса
	// не попадает в окно забор..прибытие клиента
	ErrDateWindowViolation = errors.New("create_booking: trip departure is outside the requested window")

	// ErrStaleCapacityRead возвращается, когда рейс прочитан из кеша:
	// устаревшие счетчики не могут быть основанием для проверки емкости
	ErrStaleCapacityRead = errors.New("create_booking: trip capacity read from cache, retry later")

	// ErrBookingWriteFailed возвращается при сбое записи бронирования
	// Состояние не изменено: запись бронирования идет первой в пайплайне
	ErrBookingWriteFailed = errors.New("create_booking: failed to persist booking")

	// ErrTripWriteFailed возвращается, когда бронирование записано, а списание
	// емкости рейса не удалось: в хранилище осталось неучтенное бронирование,
	// требуется ручное восстановление согласованности
	ErrTripWriteFailed = errors.New("create_booking: booking persisted but trip capacity update failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

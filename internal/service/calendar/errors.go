package calendar

import "errors"

var (
	// ErrRebuildFailed возвращается, когда полное перестроение индекса не удалось
	ErrRebuildFailed = errors.New("calendar.index: rebuild failed")

	// ErrInvalidRange возвращается при некорректном диапазоне дат запроса
	ErrInvalidRange = errors.New("calendar.index: invalid date range")
)

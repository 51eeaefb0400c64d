package trucks

import "errors"

var (
	// ErrTruckNotFound возвращается, когда грузовик не найден
	ErrTruckNotFound = errors.New("trucks.repository: truck not found")

	// ErrReadFailed возвращается, когда чтение не удалось ни из основного источника, ни из кеша
	ErrReadFailed = errors.New("trucks.repository: read failed")
)

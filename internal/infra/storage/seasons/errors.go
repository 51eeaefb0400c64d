package seasons

import "errors"

var (
	// ErrNoActiveSeason возвращается, когда нет активного сезона
	ErrNoActiveSeason = errors.New("seasons.repository: no active season")

	// ErrReadFailed возвращается, когда чтение не удалось ни из основного источника, ни из кеша
	ErrReadFailed = errors.New("seasons.repository: read failed")
)

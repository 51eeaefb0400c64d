package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-TransportService/internal/domain"
)

type CalendarIndex interface {
	Query(from, to time.Time) (map[string][]domain.CalendarEvent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

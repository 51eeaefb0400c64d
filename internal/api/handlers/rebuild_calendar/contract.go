package rebuild_calendar

import "context"

type CalendarIndex interface {
	Rebuild(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

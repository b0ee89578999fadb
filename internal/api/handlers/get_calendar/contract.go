package get_calendar

import (
	"context"

	getCalendarLayout "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_calendar_layout"
)

type CalendarUseCase interface {
	Execute(ctx context.Context, req *getCalendarLayout.Request) (*getCalendarLayout.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

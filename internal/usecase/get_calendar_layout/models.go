package get_calendar_layout

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/calendar"
)

// Request запрос недельной раскладки календаря
type Request struct {
	AccountID        int64
	WeekStart        time.Time // любой момент первого дня недели, часовой пояс берется из него
	ResourceID       *int64
	IncludeCancelled bool
}

// Response раскладка недели: сетка и события по дням
type Response struct {
	WeekStart time.Time
	Grid      calendar.Grid
	Days      []calendar.DayLayout
}

package domain

import "time"

// CalendarEvent is the layout projection of a booking for one rendered day.
// It is rebuilt on every layout request and never stored.
type CalendarEvent struct {
	ID         int64
	ResourceID int64
	Start      time.Time
	End        time.Time
	Status     BookingStatus

	Lane      int
	LaneCount int

	RowStart int // first grid slot inside the window
	RowSpan  int // slots covered inside the window
}

// WidthPercent is the horizontal share of the event column: 100/LaneCount
func (e *CalendarEvent) WidthPercent() float64 {
	if e.LaneCount <= 0 {
		return 100
	}
	return 100 / float64(e.LaneCount)
}

// LeftPercent is the horizontal offset of the event: Lane * WidthPercent
func (e *CalendarEvent) LeftPercent() float64 {
	return float64(e.Lane) * e.WidthPercent()
}

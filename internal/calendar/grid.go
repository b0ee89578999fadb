// Package calendar positions bookings on a fixed-resolution daily time grid
// and packs time-overlapping bookings into side-by-side lanes.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

var (
	// ErrInvalidSlotResolution slot length must be positive and divide an hour evenly
	ErrInvalidSlotResolution = errors.New("calendar: slot minutes must be positive and divide 60")

	// ErrInvalidWindow window hours must satisfy 0 <= start < end <= 24
	ErrInvalidWindow = errors.New("calendar: invalid grid window")
)

// Grid is a daily window split into equal slots
type Grid struct {
	WindowStartHour int
	WindowEndHour   int
	SlotMinutes     int
}

// DefaultGrid is 06:00-24:00 at 15 minutes, 72 slots per day
func DefaultGrid() Grid {
	return Grid{
		WindowStartHour: domain.DefaultWindowStartHour,
		WindowEndHour:   domain.DefaultWindowEndHour,
		SlotMinutes:     domain.DefaultSlotMinutes,
	}
}

// NewGrid validates and builds a grid
func NewGrid(windowStartHour, windowEndHour, slotMinutes int) (Grid, error) {
	g := Grid{WindowStartHour: windowStartHour, WindowEndHour: windowEndHour, SlotMinutes: slotMinutes}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Validate checks slot resolution and window bounds
func (g Grid) Validate() error {
	if !validSlotMinutes(g.SlotMinutes) {
		return fmt.Errorf("%w: got %d", ErrInvalidSlotResolution, g.SlotMinutes)
	}
	if g.WindowStartHour < 0 || g.WindowEndHour > 24 || g.WindowStartHour >= g.WindowEndHour {
		return fmt.Errorf("%w: %d-%d", ErrInvalidWindow, g.WindowStartHour, g.WindowEndHour)
	}
	return nil
}

// SlotsPerDay returns the number of slots in the window
func (g Grid) SlotsPerDay() int {
	if !validSlotMinutes(g.SlotMinutes) {
		return 0
	}
	return (g.WindowEndHour - g.WindowStartHour) * 60 / g.SlotMinutes
}

// SlotIndex returns the slot offset of instant from the window start.
// ok is false when the instant is before the window, at or after its end,
// or the grid resolution is invalid. The instant is read in its own location.
func (g Grid) SlotIndex(instant time.Time) (int, bool) {
	if !validSlotMinutes(g.SlotMinutes) {
		return 0, false
	}

	offset := wallOffset(instant)
	windowStart := hours(g.WindowStartHour)
	windowEnd := hours(g.WindowEndHour)
	if offset < windowStart || offset >= windowEnd {
		return 0, false
	}

	return int((offset - windowStart) / minutes(g.SlotMinutes)), true
}

// Clip projects the [start,end) range onto the window of start's day.
// rowSpan counts every slot the visible part touches; ok is false when nothing is visible.
func (g Grid) Clip(start, end time.Time) (rowStart, rowSpan int, ok bool) {
	if !validSlotMinutes(g.SlotMinutes) || !end.After(start) {
		return 0, 0, false
	}

	windowStart := hours(g.WindowStartHour)
	windowEnd := hours(g.WindowEndHour)
	slot := minutes(g.SlotMinutes)

	from := wallOffset(start)
	to := from + end.Sub(start)
	if from < windowStart {
		from = windowStart
	}
	if to > windowEnd {
		to = windowEnd
	}
	if to <= from {
		return 0, 0, false
	}

	first := int((from - windowStart) / slot)
	last := ceilDiv(to-windowStart, slot)
	return first, last - first, true
}

// SlotIndex is Grid.SlotIndex for a window ending at midnight
func SlotIndex(instant time.Time, windowStartHour, slotMinutes int) (int, bool) {
	if windowStartHour < 0 || windowStartHour > 23 {
		return 0, false
	}
	return Grid{WindowStartHour: windowStartHour, WindowEndHour: 24, SlotMinutes: slotMinutes}.SlotIndex(instant)
}

// Span returns how many grid slots the [start,end) range touches, aligned to
// the grid of start's day. It fails with InvalidRangeError when end <= start.
func Span(start, end time.Time, slotMinutes int) (int, error) {
	if !validSlotMinutes(slotMinutes) {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSlotResolution, slotMinutes)
	}
	if err := domain.ValidateRange(start, end); err != nil {
		return 0, err
	}

	slot := minutes(slotMinutes)
	from := wallOffset(start)
	to := from + end.Sub(start)

	return ceilDiv(to, slot) - int(from/slot), nil
}

func validSlotMinutes(m int) bool {
	return m > 0 && 60%m == 0
}

// wallOffset is the wall-clock time of day, independent of DST jumps
func wallOffset(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return hours(h) + minutes(m) + time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}

func hours(h int) time.Duration { return time.Duration(h) * time.Hour }

func minutes(m int) time.Duration { return time.Duration(m) * time.Minute }

func ceilDiv(d, unit time.Duration) int {
	n := d / unit
	if d%unit != 0 {
		n++
	}
	return int(n)
}

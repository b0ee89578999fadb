package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// LayoutOptions filters bookings before lanes are assigned
type LayoutOptions struct {
	ResourceID       *int64 // только один зал (опционально)
	IncludeCancelled bool   // cancelled bookings and expired holds take lanes too
}

// DayLayout is the set of positioned events of one calendar day
type DayLayout struct {
	Date   time.Time
	Events []domain.CalendarEvent
}

// LayoutDay positions the bookings that overlap day (in day's location).
// A booking continuing from the previous day is drawn from midnight. Bookings
// entirely outside the grid window are dropped; each resource is packed
// independently. A booking with End <= Start fails the whole layout.
func LayoutDay(
	bookings []*domain.Booking,
	day time.Time,
	grid Grid,
	opts LayoutOptions,
	now time.Time,
) ([]domain.CalendarEvent, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	loc := day.Location()
	dayStart := StartOfDay(day)
	dayEnd := dayStart.AddDate(0, 0, 1)
	byResource := make(map[int64][]domain.CalendarEvent)

	for _, b := range bookings {
		if err := b.ValidateRange(); err != nil {
			return nil, fmt.Errorf("booking id=%d: %w", b.ID, err)
		}

		if opts.ResourceID != nil && b.ResourceID != *opts.ResourceID {
			continue
		}

		status := b.EffectiveStatus(now)
		if status == domain.StatusCancelled && !opts.IncludeCancelled {
			continue
		}

		if !b.Start.Before(dayEnd) || !b.End.After(dayStart) {
			continue
		}
		start := b.Start.In(loc)
		if start.Before(dayStart) {
			start = dayStart
		}

		rowStart, rowSpan, visible := grid.Clip(start, b.End.In(loc))
		if !visible {
			continue
		}

		byResource[b.ResourceID] = append(byResource[b.ResourceID], domain.CalendarEvent{
			ID:         b.ID,
			ResourceID: b.ResourceID,
			Start:      b.Start,
			End:        b.End,
			Status:     status,
			RowStart:   rowStart,
			RowSpan:    rowSpan,
		})
	}

	result := make([]domain.CalendarEvent, 0)
	for _, events := range byResource {
		intervals := make([]Interval, len(events))
		for i, e := range events {
			intervals[i] = Interval{ID: e.ID, Start: e.Start, End: e.End}
		}

		placements := Partition(intervals)
		for _, e := range events {
			p := placements[e.ID]
			e.Lane = p.Lane
			e.LaneCount = p.LaneCount
			result = append(result, e)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.ResourceID != b.ResourceID {
			return a.ResourceID < b.ResourceID
		}
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		return a.ID < b.ID
	})

	return result, nil
}

// LayoutWeek runs LayoutDay for seven consecutive days starting at weekStart's date
func LayoutWeek(
	bookings []*domain.Booking,
	weekStart time.Time,
	grid Grid,
	opts LayoutOptions,
	now time.Time,
) ([]DayLayout, error) {
	first := StartOfDay(weekStart)
	days := make([]DayLayout, 0, domain.DaysInWeek)

	for i := 0; i < domain.DaysInWeek; i++ {
		day := first.AddDate(0, 0, i)
		events, err := LayoutDay(bookings, day, grid, opts, now)
		if err != nil {
			return nil, err
		}
		days = append(days, DayLayout{Date: day, Events: events})
	}

	return days, nil
}

// StartOfDay обнуляет время, сохраняя часовой пояс
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
)

var layoutNow = time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)

func booking(id, resourceID int64, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{ID: id, ResourceID: resourceID, Start: start, End: end, Status: status}
}

func TestLayoutDay_PartitionsPerResource(t *testing.T) {
	day := at(0, 0)
	bookings := []*domain.Booking{
		booking(1, 10, at(10, 0), at(11, 0), domain.StatusConfirmed),
		booking(2, 10, at(10, 30), at(11, 30), domain.StatusConfirmed),
		booking(3, 20, at(10, 0), at(11, 0), domain.StatusConfirmed),
	}

	events, err := LayoutDay(bookings, day, DefaultGrid(), LayoutOptions{}, layoutNow)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, int64(1), events[0].ID)
	assert.Equal(t, 0, events[0].Lane)
	assert.Equal(t, 2, events[0].LaneCount)
	assert.Equal(t, 16, events[0].RowStart)
	assert.Equal(t, 4, events[0].RowSpan)

	assert.Equal(t, int64(2), events[1].ID)
	assert.Equal(t, 1, events[1].Lane)
	assert.Equal(t, 2, events[1].LaneCount)
	assert.InDelta(t, 50.0, events[1].LeftPercent(), 1e-9)

	// другой зал не делит ширину с первым
	assert.Equal(t, int64(3), events[2].ID)
	assert.Equal(t, 0, events[2].Lane)
	assert.Equal(t, 1, events[2].LaneCount)
}

func TestLayoutDay_SkipsCancelledAndExpiredHolds(t *testing.T) {
	expired := layoutNow.Add(-time.Hour)
	hold := booking(2, 10, at(10, 0), at(11, 0), domain.StatusTentative)
	hold.HoldExpiresAt = &expired

	bookings := []*domain.Booking{
		booking(1, 10, at(10, 0), at(11, 0), domain.StatusConfirmed),
		hold,
		booking(3, 10, at(10, 0), at(11, 0), domain.StatusCancelled),
	}

	events, err := LayoutDay(bookings, at(0, 0), DefaultGrid(), LayoutOptions{}, layoutNow)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 1, events[0].LaneCount)

	events, err = LayoutDay(bookings, at(0, 0), DefaultGrid(), LayoutOptions{IncludeCancelled: true}, layoutNow)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, domain.StatusCancelled, events[1].Status, "expired hold reads as cancelled")
	for _, e := range events {
		assert.Equal(t, 3, e.LaneCount)
	}
}

func TestLayoutDay_DropsOtherDaysAndOutsideWindow(t *testing.T) {
	bookings := []*domain.Booking{
		booking(1, 10, at(4, 0), at(5, 30), domain.StatusConfirmed),
		booking(2, 10, at(10, 0).AddDate(0, 0, 1), at(11, 0).AddDate(0, 0, 1), domain.StatusConfirmed),
		booking(3, 10, at(5, 0), at(7, 0), domain.StatusConfirmed),
	}

	events, err := LayoutDay(bookings, at(0, 0), DefaultGrid(), LayoutOptions{}, layoutNow)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(3), events[0].ID)
	assert.Equal(t, 0, events[0].RowStart)
	assert.Equal(t, 4, events[0].RowSpan)
}

func TestLayoutDay_ContinuesAcrossMidnight(t *testing.T) {
	overnight := booking(1, 10, at(23, 0).AddDate(0, 0, -1), at(7, 0), domain.StatusConfirmed)

	events, err := LayoutDay([]*domain.Booking{overnight}, at(0, 0), DefaultGrid(), LayoutOptions{}, layoutNow)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 0, events[0].RowStart)
	assert.Equal(t, 4, events[0].RowSpan)
	assert.Equal(t, overnight.Start, events[0].Start)

	events, err = LayoutDay([]*domain.Booking{overnight}, at(0, 0).AddDate(0, 0, -1), DefaultGrid(), LayoutOptions{}, layoutNow)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 68, events[0].RowStart)
	assert.Equal(t, 4, events[0].RowSpan)

	ended := booking(2, 10, at(20, 0).AddDate(0, 0, -1), at(0, 0), domain.StatusConfirmed)
	events, err = LayoutDay([]*domain.Booking{ended}, at(0, 0), DefaultGrid(), LayoutOptions{}, layoutNow)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestLayoutDay_ResourceFilter(t *testing.T) {
	bookings := []*domain.Booking{
		booking(1, 10, at(10, 0), at(11, 0), domain.StatusConfirmed),
		booking(2, 20, at(10, 0), at(11, 0), domain.StatusConfirmed),
	}

	events, err := LayoutDay(bookings, at(0, 0), DefaultGrid(), LayoutOptions{ResourceID: ptr.Ptr(int64(20))}, layoutNow)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(2), events[0].ID)
}

func TestLayoutDay_InvalidRange(t *testing.T) {
	bookings := []*domain.Booking{
		booking(1, 10, at(11, 0), at(10, 0), domain.StatusConfirmed),
	}

	_, err := LayoutDay(bookings, at(0, 0), DefaultGrid(), LayoutOptions{}, layoutNow)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestLayoutDay_InvalidGrid(t *testing.T) {
	_, err := LayoutDay(nil, at(0, 0), Grid{WindowStartHour: 6, WindowEndHour: 24, SlotMinutes: 13}, LayoutOptions{}, layoutNow)
	assert.ErrorIs(t, err, ErrInvalidSlotResolution)
}

func TestLayoutWeek(t *testing.T) {
	bookings := []*domain.Booking{
		booking(1, 10, at(10, 0), at(11, 0), domain.StatusConfirmed),
		booking(2, 10, at(10, 0).AddDate(0, 0, 3), at(11, 0).AddDate(0, 0, 3), domain.StatusConfirmed),
		booking(3, 10, at(10, 0).AddDate(0, 0, 7), at(11, 0).AddDate(0, 0, 7), domain.StatusConfirmed),
	}

	days, err := LayoutWeek(bookings, at(15, 30), DefaultGrid(), LayoutOptions{}, layoutNow)
	require.NoError(t, err)
	require.Len(t, days, 7)

	assert.True(t, days[0].Date.Equal(at(0, 0)))
	assert.Len(t, days[0].Events, 1)
	assert.Len(t, days[3].Events, 1)
	for _, i := range []int{1, 2, 4, 5, 6} {
		assert.Empty(t, days[i].Events)
	}
}

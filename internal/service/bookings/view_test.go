package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
)

func ids(view ViewModel) []int64 {
	out := make([]int64, 0, len(view.Items))
	for _, item := range view.Items {
		out = append(out, item.Booking.ID)
	}
	return out
}

func TestDeriveView_EffectiveStatusAndCounts(t *testing.T) {
	bookings := []*domain.Booking{
		newBooking(1, 10, 9, 10, domain.StatusTentative, withHold(testNow.Add(time.Hour))),
		newBooking(2, 10, 10, 11, domain.StatusTentative, withHold(testNow.Add(-time.Hour))),
		newBooking(3, 10, 11, 12, domain.StatusConfirmed),
		newBooking(4, 10, 12, 13, domain.StatusCancelled),
	}

	view := DeriveView(bookings, ViewFilter{Status: ptr.Ptr(domain.StatusCancelled)}, ViewSort{}, testNow)

	assert.Equal(t, []int64{2, 4}, ids(view))
	assert.Equal(t, domain.StatusCancelled, view.Items[0].Status)
	assert.Equal(t, map[domain.BookingStatus]int{
		domain.StatusTentative: 1,
		domain.StatusConfirmed: 1,
		domain.StatusCompleted: 0,
		domain.StatusCancelled: 2,
	}, view.Counts)
}

func TestDeriveView_Filters(t *testing.T) {
	bookings := []*domain.Booking{
		newBooking(1, 10, 9, 10, domain.StatusConfirmed, withCustomer("Anna Ivanova", "anna@example.com")),
		newBooking(2, 20, 10, 11, domain.StatusConfirmed, withCustomer("Boris", "b@EXAMPLE.com")),
		newBooking(3, 10, 14, 15, domain.StatusConfirmed, withCustomer("Clara", "clara@mail.org")),
	}

	t.Run("resource", func(t *testing.T) {
		view := DeriveView(bookings, ViewFilter{ResourceID: ptr.Ptr(int64(10))}, ViewSort{}, testNow)
		assert.Equal(t, []int64{1, 3}, ids(view))
	})

	t.Run("search is case insensitive on name and email", func(t *testing.T) {
		view := DeriveView(bookings, ViewFilter{Query: " example.COM "}, ViewSort{}, testNow)
		assert.Equal(t, []int64{1, 2}, ids(view))

		view = DeriveView(bookings, ViewFilter{Query: "clara"}, ViewSort{}, testNow)
		assert.Equal(t, []int64{3}, ids(view))
	})

	t.Run("date range overlap", func(t *testing.T) {
		from := bookings[0].End // 10:00, booking 1 ends exactly here
		to := bookings[2].Start // 14:00, booking 3 starts exactly here
		view := DeriveView(bookings, ViewFilter{From: &from, To: &to}, ViewSort{}, testNow)
		assert.Equal(t, []int64{2}, ids(view))
	})
}

func TestDeriveView_Sort(t *testing.T) {
	created := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	bookings := []*domain.Booking{
		newBooking(1, 10, 11, 12, domain.StatusConfirmed, withCustomer("charlie", ""), withTotal(300), withCreatedAt(created.Add(2*time.Hour))),
		newBooking(2, 10, 9, 13, domain.StatusTentative, withCustomer("Alice", ""), withTotal(100), withCreatedAt(created)),
		newBooking(3, 10, 10, 11, domain.StatusCompleted, withCustomer("bob", ""), withTotal(300), withCreatedAt(created.Add(time.Hour))),
	}

	tests := []struct {
		name  string
		order ViewSort
		want  []int64
	}{
		{"default start asc", ViewSort{}, []int64{2, 3, 1}},
		{"start desc", ViewSort{Field: SortByStart, Desc: true}, []int64{1, 3, 2}},
		{"end asc", ViewSort{Field: SortByEnd}, []int64{3, 1, 2}},
		{"customer name ignores case", ViewSort{Field: SortByCustomerName}, []int64{2, 3, 1}},
		{"total value ties broken by id", ViewSort{Field: SortByTotalValue}, []int64{2, 1, 3}},
		{"total value desc keeps id asc on ties", ViewSort{Field: SortByTotalValue, Desc: true}, []int64{1, 3, 2}},
		{"status lifecycle order", ViewSort{Field: SortByStatus}, []int64{2, 1, 3}},
		{"created at desc", ViewSort{Field: SortByCreatedAt, Desc: true}, []int64{1, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := DeriveView(bookings, ViewFilter{}, tt.order, testNow)
			assert.Equal(t, tt.want, ids(view))
		})
	}
}

func TestDeriveView_DoesNotReorderInput(t *testing.T) {
	bookings := []*domain.Booking{
		newBooking(2, 10, 12, 13, domain.StatusConfirmed),
		newBooking(1, 10, 9, 10, domain.StatusConfirmed),
	}

	view := DeriveView(bookings, ViewFilter{}, ViewSort{}, testNow)
	require.Len(t, view.Items, 2)
	assert.Equal(t, int64(2), bookings[0].ID)
	assert.Equal(t, []int64{1, 2}, ids(view))
}

func TestParseSortField(t *testing.T) {
	f, err := ParseSortField("")
	require.NoError(t, err)
	assert.Equal(t, SortByStart, f)

	f, err = ParseSortField("customerName")
	require.NoError(t, err)
	assert.Equal(t, SortByCustomerName, f)

	_, err = ParseSortField("price")
	assert.Error(t, err)
}

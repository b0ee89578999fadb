package bookings

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// SortField поле сортировки списка бронирований
type SortField string

const (
	SortByStart        SortField = "start"
	SortByEnd          SortField = "end"
	SortByCustomerName SortField = "customerName"
	SortByTotalValue   SortField = "totalValue"
	SortByStatus       SortField = "status"
	SortByCreatedAt    SortField = "createdAt"
)

var errUnknownSort = errors.New("unknown sort field")

// ParseSortField пустая строка означает сортировку по началу
func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case "":
		return SortByStart, nil
	case SortByStart, SortByEnd, SortByCustomerName, SortByTotalValue, SortByStatus, SortByCreatedAt:
		return SortField(s), nil
	default:
		return "", errUnknownSort
	}
}

// ViewFilter фильтр списка; статус сравнивается с эффективным статусом
type ViewFilter struct {
	Status     *domain.BookingStatus
	ResourceID *int64
	From       *time.Time
	To         *time.Time
	Query      string
}

type ViewSort struct {
	Field SortField
	Desc  bool
}

// ViewItem бронирование вместе со статусом, видимым оператору
type ViewItem struct {
	Booking *domain.Booking
	Status  domain.BookingStatus
}

// ViewModel результат DeriveView.
// Counts считаются до фильтра по статусу, чтобы показывать количество по каждой вкладке
type ViewModel struct {
	Items  []ViewItem
	Counts map[domain.BookingStatus]int
}

// DeriveView фильтрует, сортирует и считает бронирования без обращения к хранилищу.
// Входной слайс не изменяется
func DeriveView(bookings []*domain.Booking, filter ViewFilter, order ViewSort, now time.Time) ViewModel {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	counts := make(map[domain.BookingStatus]int, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		counts[status] = 0
	}

	items := make([]ViewItem, 0, len(bookings))
	for _, b := range bookings {
		if filter.ResourceID != nil && b.ResourceID != *filter.ResourceID {
			continue
		}
		if filter.From != nil && !b.End.After(*filter.From) {
			continue
		}
		if filter.To != nil && !b.Start.Before(*filter.To) {
			continue
		}
		if query != "" && !matchesQuery(b, query) {
			continue
		}

		status := b.EffectiveStatus(now)
		counts[status]++

		if filter.Status != nil && status != *filter.Status {
			continue
		}
		items = append(items, ViewItem{Booking: b, Status: status})
	}

	sort.SliceStable(items, func(i, j int) bool {
		cmp := compareItems(items[i], items[j], order.Field)
		if cmp == 0 {
			// ID как последний критерий, направление сортировки на него не влияет
			return items[i].Booking.ID < items[j].Booking.ID
		}
		if order.Desc {
			return cmp > 0
		}
		return cmp < 0
	})

	return ViewModel{Items: items, Counts: counts}
}

func matchesQuery(b *domain.Booking, query string) bool {
	return strings.Contains(strings.ToLower(b.CustomerName), query) ||
		strings.Contains(strings.ToLower(b.CustomerEmail), query)
}

func compareItems(a, b ViewItem, field SortField) int {
	switch field {
	case SortByEnd:
		return compareTime(a.Booking.End, b.Booking.End)
	case SortByCustomerName:
		return strings.Compare(strings.ToLower(a.Booking.CustomerName), strings.ToLower(b.Booking.CustomerName))
	case SortByTotalValue:
		return a.Booking.TotalValue.Cmp(b.Booking.TotalValue)
	case SortByStatus:
		return statusRank(a.Status) - statusRank(b.Status)
	case SortByCreatedAt:
		return compareTime(a.Booking.CreatedAt, b.Booking.CreatedAt)
	default:
		return compareTime(a.Booking.Start, b.Booking.Start)
	}
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// statusRank порядок статусов в жизненном цикле
func statusRank(s domain.BookingStatus) int {
	for i, status := range domain.AllStatuses {
		if status == s {
			return i
		}
	}
	return len(domain.AllStatuses)
}

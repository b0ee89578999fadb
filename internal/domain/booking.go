package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusTentative BookingStatus = "tentative"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// AllStatuses lists every booking status in lifecycle order
var AllStatuses = []BookingStatus{
	StatusTentative,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// ParseBookingStatus converts a raw string into a BookingStatus
func ParseBookingStatus(s string) (BookingStatus, error) {
	for _, status := range AllStatuses {
		if BookingStatus(s) == status {
			return status, nil
		}
	}
	return "", ErrUnknownStatus
}

// IsTerminal returns true for statuses with no outgoing transitions
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// TaxType selects how tax applies to a booking
type TaxType string

const (
	// TaxStandard applies the account tax rate
	TaxStandard TaxType = "standard"
	// TaxExempt applies no tax
	TaxExempt TaxType = "exempt"
)

// ParseTaxType converts a raw string into a TaxType
func ParseTaxType(s string) (TaxType, error) {
	switch TaxType(s) {
	case TaxStandard, TaxExempt:
		return TaxType(s), nil
	default:
		return "", ErrUnknownTaxType
	}
}

// Booking represents a venue booking of one resource (hall/room)
type Booking struct {
	ID         int64
	AccountID  int64 // владелец площадки
	ResourceID int64 // зал/помещение

	CustomerName  string
	CustomerEmail string

	Start time.Time
	End   time.Time

	Status        BookingStatus
	HoldExpiresAt *time.Time // only set while Status == StatusTentative

	TotalValue   decimal.Decimal // tax-exclusive
	TaxType      TaxType
	DepositType  DepositType
	DepositValue decimal.Decimal
	Payment      *PaymentDetails // filled on confirmation

	Notes              *string
	CancellationReason *string

	ConfirmedAt *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the booked time range length
func (b *Booking) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// Overlaps reports whether two bookings intersect on the half-open [Start, End) ranges
func (b *Booking) Overlaps(other *Booking) bool {
	return b.Start.Before(other.End) && other.Start.Before(b.End)
}

// ValidateRange returns an InvalidRangeError when End <= Start
func (b *Booking) ValidateRange() error {
	return ValidateRange(b.Start, b.End)
}

// IsHoldExpired returns true if the booking is a tentative hold whose deadline has passed
func (b *Booking) IsHoldExpired(now time.Time) bool {
	return b.Status == StatusTentative && b.HoldExpiresAt != nil && now.After(*b.HoldExpiresAt)
}

// EffectiveStatus is the status shown to operators: an expired hold reads as cancelled
// even before the cancellation is written back to storage.
func (b *Booking) EffectiveStatus(now time.Time) BookingStatus {
	if b.IsHoldExpired(now) {
		return StatusCancelled
	}
	return b.Status
}

// clone returns a deep copy so that transitions never mutate the receiver
func (b *Booking) clone() Booking {
	c := *b
	c.HoldExpiresAt = copyTime(b.HoldExpiresAt)
	c.ConfirmedAt = copyTime(b.ConfirmedAt)
	c.CompletedAt = copyTime(b.CompletedAt)
	c.CancelledAt = copyTime(b.CancelledAt)
	if b.Notes != nil {
		notes := *b.Notes
		c.Notes = &notes
	}
	if b.CancellationReason != nil {
		reason := *b.CancellationReason
		c.CancellationReason = &reason
	}
	if b.Payment != nil {
		payment := *b.Payment
		c.Payment = &payment
	}
	return c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// BookingsFilter фильтр для выборки бронирований аккаунта
type BookingsFilter struct {
	AccountID  int64          // Обязательный параметр
	ResourceID *int64         // Фильтр по залу (опционально)
	From       *time.Time     // Бронирования, заканчивающиеся после From (опционально)
	To         *time.Time     // Бронирования, начинающиеся до To (опционально)
	Status     *BookingStatus // Фильтр по сохранённому статусу (опционально)
}

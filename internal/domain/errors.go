package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidRange matches every InvalidRangeError
	ErrInvalidRange = errors.New("domain: invalid time range")

	// ErrInvalidTransition matches every InvalidTransitionError
	ErrInvalidTransition = errors.New("domain: invalid status transition")

	// ErrExpiredHold matches every ExpiredHoldError
	ErrExpiredHold = errors.New("domain: tentative hold has expired")

	// ErrInvalidDepositConfiguration matches every InvalidDepositConfigurationError
	ErrInvalidDepositConfiguration = errors.New("domain: invalid deposit configuration")

	// ErrUnknownStatus is returned when parsing an unsupported status
	ErrUnknownStatus = errors.New("domain: unknown booking status")

	// ErrUnknownTaxType is returned when parsing an unsupported tax type
	ErrUnknownTaxType = errors.New("domain: unknown tax type")

	// ErrInvalidAmount is returned for negative monetary inputs
	ErrInvalidAmount = errors.New("domain: amount must not be negative")
)

// InvalidRangeError is returned when End <= Start
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%v: end %s is not after start %s",
		ErrInvalidRange, e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339))
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// InvalidTransitionError is returned for a status change outside the legal edge set
type InvalidTransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%v: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// ExpiredHoldError is returned when confirming a tentative booking past its hold deadline
type ExpiredHoldError struct {
	BookingID int64
	ExpiredAt time.Time
}

func (e *ExpiredHoldError) Error() string {
	return fmt.Sprintf("%v: booking %d expired at %s",
		ErrExpiredHold, e.BookingID, e.ExpiredAt.Format(time.RFC3339))
}

func (e *ExpiredHoldError) Is(target error) bool {
	return target == ErrExpiredHold
}

// InvalidDepositConfigurationError is returned for a deposit value that breaks its type's bounds
type InvalidDepositConfigurationError struct {
	Type   DepositType
	Value  string
	Reason string
}

func (e *InvalidDepositConfigurationError) Error() string {
	return fmt.Sprintf("%v: type=%s value=%s: %s", ErrInvalidDepositConfiguration, e.Type, e.Value, e.Reason)
}

func (e *InvalidDepositConfigurationError) Is(target error) bool {
	return target == ErrInvalidDepositConfiguration
}

// ValidateRange returns an InvalidRangeError when end <= start
func ValidateRange(start, end time.Time) error {
	if !end.After(start) {
		return &InvalidRangeError{Start: start, End: end}
	}
	return nil
}

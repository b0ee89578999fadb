package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// allowedTransitions is the complete set of legal lifecycle edges.
// Statuses missing from the map (completed, cancelled) are terminal.
var allowedTransitions = map[BookingStatus]map[BookingStatus]struct{}{
	StatusTentative: {
		StatusConfirmed: {},
		StatusCancelled: {},
	},
	StatusConfirmed: {
		StatusCompleted: {},
		StatusCancelled: {},
	},
}

// CanTransition reports whether from -> to is a legal lifecycle edge
func CanTransition(from, to BookingStatus) bool {
	next, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

// ConfirmTerms are the operator-supplied figures required to confirm a booking
type ConfirmTerms struct {
	TaxType        TaxType
	TaxRatePercent decimal.Decimal // account rate; ignored for TaxExempt
	DepositType    DepositType
	DepositValue   decimal.Decimal
}

// TransitionTo returns a copy of the booking moved to the target status.
// The receiver is never modified, so a failed transition leaves no partial state.
// Moving a tentative booking to confirmed fails with ExpiredHoldError once the hold
// has passed; operator confirmation goes through Confirm, which also fills Payment.
func (b *Booking) TransitionTo(to BookingStatus, now time.Time) (Booking, error) {
	if !CanTransition(b.Status, to) {
		return Booking{}, &InvalidTransitionError{From: b.Status, To: to}
	}

	if to == StatusConfirmed && b.IsHoldExpired(now) {
		return Booking{}, &ExpiredHoldError{BookingID: b.ID, ExpiredAt: *b.HoldExpiresAt}
	}

	next := b.clone()
	next.Status = to
	next.HoldExpiresAt = nil
	next.UpdatedAt = now

	stamp := now
	switch to {
	case StatusConfirmed:
		next.ConfirmedAt = &stamp
	case StatusCompleted:
		next.CompletedAt = &stamp
	case StatusCancelled:
		next.CancelledAt = &stamp
	}

	return next, nil
}

// Confirm moves a tentative booking to confirmed and computes its payment figures
func (b *Booking) Confirm(terms ConfirmTerms, now time.Time) (Booking, error) {
	if !CanTransition(b.Status, StatusConfirmed) {
		return Booking{}, &InvalidTransitionError{From: b.Status, To: StatusConfirmed}
	}
	if b.IsHoldExpired(now) {
		return Booking{}, &ExpiredHoldError{BookingID: b.ID, ExpiredAt: *b.HoldExpiresAt}
	}

	payment, err := PreparePayment(b.TotalValue, terms)
	if err != nil {
		return Booking{}, err
	}

	next, err := b.TransitionTo(StatusConfirmed, now)
	if err != nil {
		return Booking{}, err
	}

	next.TaxType = terms.TaxType
	next.DepositType = terms.DepositType
	next.DepositValue = terms.DepositValue
	next.Payment = &payment

	return next, nil
}

// Complete marks a confirmed booking as completed. Completion before End is allowed.
func (b *Booking) Complete(now time.Time) (Booking, error) {
	return b.TransitionTo(StatusCompleted, now)
}

// Cancel cancels a tentative or confirmed booking. An empty reason stores no reason.
func (b *Booking) Cancel(reason string, now time.Time) (Booking, error) {
	next, err := b.TransitionTo(StatusCancelled, now)
	if err != nil {
		return Booking{}, err
	}

	if reason != "" {
		next.CancellationReason = &reason
	}
	return next, nil
}

// PreparePayment validates confirmation terms and computes payment figures for a total
func PreparePayment(total decimal.Decimal, terms ConfirmTerms) (PaymentDetails, error) {
	if _, err := ParseTaxType(string(terms.TaxType)); err != nil {
		return PaymentDetails{}, fmt.Errorf("%w: %q", err, terms.TaxType)
	}

	rate := terms.TaxRatePercent
	if terms.TaxType == TaxExempt {
		rate = decimal.Zero
	}

	in := DepositInput{
		TotalValue:     total,
		TaxRatePercent: rate,
		DepositType:    terms.DepositType,
		DepositValue:   terms.DepositValue,
	}
	if err := ValidateDepositInput(in); err != nil {
		return PaymentDetails{}, err
	}

	return CalculateDeposit(in), nil
}

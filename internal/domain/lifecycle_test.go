package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func newTentative(holdExpiresAt time.Time) *Booking {
	return &Booking{
		ID:            42,
		AccountID:     1,
		ResourceID:    7,
		CustomerName:  "Anna",
		CustomerEmail: "anna@example.com",
		Start:         testNow.Add(24 * time.Hour),
		End:           testNow.Add(26 * time.Hour),
		Status:        StatusTentative,
		HoldExpiresAt: &holdExpiresAt,
		TotalValue:    decimal.NewFromInt(1000),
	}
}

func standardTerms() ConfirmTerms {
	return ConfirmTerms{
		TaxType:        TaxStandard,
		TaxRatePercent: decimal.NewFromInt(10),
		DepositType:    DepositPercentage,
		DepositValue:   decimal.NewFromInt(50),
	}
}

func TestCanTransition_Closure(t *testing.T) {
	legal := map[[2]BookingStatus]bool{
		{StatusTentative, StatusConfirmed}: true,
		{StatusTentative, StatusCancelled}: true,
		{StatusConfirmed, StatusCompleted}: true,
		{StatusConfirmed, StatusCancelled}: true,
	}

	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			assert.Equal(t, legal[[2]BookingStatus{from, to}], CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTransitionTo_IllegalPairsLeaveBookingUnchanged(t *testing.T) {
	legal := map[[2]BookingStatus]bool{
		{StatusTentative, StatusConfirmed}: true,
		{StatusTentative, StatusCancelled}: true,
		{StatusConfirmed, StatusCompleted}: true,
		{StatusConfirmed, StatusCancelled}: true,
	}

	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			if legal[[2]BookingStatus{from, to}] {
				continue
			}

			b := newTentative(testNow.Add(time.Hour))
			b.Status = from
			before := b.clone()

			_, err := b.TransitionTo(to, testNow)
			require.Error(t, err, "%s -> %s", from, to)
			assert.ErrorIs(t, err, ErrInvalidTransition)

			var transitionErr *InvalidTransitionError
			require.True(t, errors.As(err, &transitionErr))
			assert.Equal(t, from, transitionErr.From)
			assert.Equal(t, to, transitionErr.To)
			assert.Equal(t, before, *b)
		}
	}
}

func TestConfirm_Success(t *testing.T) {
	b := newTentative(testNow.Add(time.Hour))

	confirmed, err := b.Confirm(standardTerms(), testNow)
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, confirmed.Status)
	assert.Nil(t, confirmed.HoldExpiresAt)
	require.NotNil(t, confirmed.ConfirmedAt)
	assert.True(t, confirmed.ConfirmedAt.Equal(testNow))
	require.NotNil(t, confirmed.Payment)
	assert.Equal(t, "1100.00", confirmed.Payment.TotalInclTax.StringFixed(2))
	assert.Equal(t, "550.00", confirmed.Payment.DepositAmount.StringFixed(2))
	assert.Equal(t, "550.00", confirmed.Payment.BalanceDue.StringFixed(2))

	// исходное бронирование не изменилось
	assert.Equal(t, StatusTentative, b.Status)
	assert.NotNil(t, b.HoldExpiresAt)
	assert.Nil(t, b.Payment)
}

func TestConfirm_ExpiredHold(t *testing.T) {
	expiry := testNow.Add(-time.Minute)
	b := newTentative(expiry)

	_, err := b.Confirm(standardTerms(), testNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpiredHold)
	assert.NotErrorIs(t, err, ErrInvalidTransition)

	var holdErr *ExpiredHoldError
	require.True(t, errors.As(err, &holdErr))
	assert.Equal(t, int64(42), holdErr.BookingID)
	assert.True(t, holdErr.ExpiredAt.Equal(expiry))

	assert.Equal(t, StatusTentative, b.Status)
	assert.Equal(t, StatusCancelled, b.EffectiveStatus(testNow))
}

func TestConfirm_HoldExpiringExactlyNowIsStillValid(t *testing.T) {
	b := newTentative(testNow)

	_, err := b.Confirm(standardTerms(), testNow)
	assert.NoError(t, err)
}

func TestConfirm_InvalidDeposit(t *testing.T) {
	b := newTentative(testNow.Add(time.Hour))
	terms := standardTerms()
	terms.DepositValue = decimal.NewFromInt(101)

	_, err := b.Confirm(terms, testNow)
	assert.ErrorIs(t, err, ErrInvalidDepositConfiguration)
	assert.Equal(t, StatusTentative, b.Status)
}

func TestConfirm_UnknownTaxType(t *testing.T) {
	b := newTentative(testNow.Add(time.Hour))
	terms := standardTerms()
	terms.TaxType = "vat-free"

	_, err := b.Confirm(terms, testNow)
	assert.ErrorIs(t, err, ErrUnknownTaxType)
}

func TestConfirm_TaxExemptIgnoresRate(t *testing.T) {
	b := newTentative(testNow.Add(time.Hour))
	terms := standardTerms()
	terms.TaxType = TaxExempt

	confirmed, err := b.Confirm(terms, testNow)
	require.NoError(t, err)
	assert.Equal(t, "1000.00", confirmed.Payment.TotalInclTax.StringFixed(2))
	assert.True(t, confirmed.Payment.TaxRatePercent.IsZero())
}

func TestConfirm_FromTerminalStatus(t *testing.T) {
	b := newTentative(testNow.Add(time.Hour))
	b.Status = StatusCompleted
	b.HoldExpiresAt = nil

	_, err := b.Confirm(standardTerms(), testNow)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestComplete_AllowsEarlyCompletion(t *testing.T) {
	b := newTentative(testNow.Add(time.Hour))
	confirmed, err := b.Confirm(standardTerms(), testNow)
	require.NoError(t, err)

	// бронирование ещё не началось, но завершение разрешено
	completed, err := confirmed.Complete(testNow)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
}

func TestCancel_ExpiredHoldCanBeCancelled(t *testing.T) {
	b := newTentative(testNow.Add(-time.Hour))

	cancelled, err := b.Cancel("hold expired", testNow)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Nil(t, cancelled.HoldExpiresAt)
	require.NotNil(t, cancelled.CancellationReason)
	assert.Equal(t, "hold expired", *cancelled.CancellationReason)
	require.NotNil(t, cancelled.CancelledAt)
}

func TestCancel_EmptyReason(t *testing.T) {
	b := newTentative(testNow.Add(time.Hour))

	cancelled, err := b.Cancel("", testNow)
	require.NoError(t, err)
	assert.Nil(t, cancelled.CancellationReason)
}

func TestCancel_Twice(t *testing.T) {
	b := newTentative(testNow.Add(time.Hour))
	cancelled, err := b.Cancel("", testNow)
	require.NoError(t, err)

	_, err = cancelled.Cancel("", testNow)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

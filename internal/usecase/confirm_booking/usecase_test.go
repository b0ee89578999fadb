package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueBooking/pkg/metrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
	"github.com/m04kA/SMC-VenueBooking/pkg/txmanager"
)

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeTx struct {
	calls     int
	commitErr error
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return f.commitErr
}

type fakeRepo struct {
	booking   *domain.Booking
	updated   *domain.Booking
	expected  domain.BookingStatus
	updateErr error
}

func (f *fakeRepo) GetByID(_ context.Context, accountID, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id || f.booking.AccountID != accountID {
		return nil, bookingRepo.ErrBookingNotFound
	}
	c := *f.booking
	return &c, nil
}

func (f *fakeRepo) UpdateLifecycle(_ context.Context, b *domain.Booking, expected domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = b
	f.expected = expected
	return nil
}

type fakeSettings struct{ err error }

func (f fakeSettings) Resolve(_ context.Context, accountID int64) (*domain.AccountSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return domain.DefaultAccountSettings(accountID), nil
}

type fakeTransitions struct{ results []string }

func (f *fakeTransitions) ObserveTransition(_, _, result string) {
	f.results = append(f.results, result)
}

func tentative(hold time.Time) *domain.Booking {
	return &domain.Booking{
		ID:            7,
		AccountID:     1,
		ResourceID:    5,
		Start:         testNow.Add(24 * time.Hour),
		End:           testNow.Add(28 * time.Hour),
		Status:        domain.StatusTentative,
		HoldExpiresAt: &hold,
		TotalValue:    decimal.NewFromInt(1000),
		TaxType:       domain.TaxStandard,
		DepositType:   domain.DepositPercentage,
		DepositValue:  decimal.NewFromInt(50),
	}
}

type fixture struct {
	repo        *fakeRepo
	tx          *fakeTx
	transitions *fakeTransitions
	uc          *UseCase
}

func newFixture(b *domain.Booking) *fixture {
	f := &fixture{
		repo:        &fakeRepo{booking: b},
		tx:          &fakeTx{},
		transitions: &fakeTransitions{},
	}
	f.uc = NewUseCase(f.repo, fakeSettings{}, f.tx, f.transitions, nopLogger{})
	f.uc.timeProvider = fixedTime{testNow}
	return f
}

// confirmRequest условия подтверждения: standard, депозит 50%
func confirmRequest() *Request {
	return &Request{
		AccountID:    1,
		BookingID:    7,
		TaxType:      ptr.Ptr("standard"),
		DepositType:  ptr.Ptr("percentage"),
		DepositValue: ptr.Ptr(decimal.NewFromInt(50)),
	}
}

func TestExecute_ComputesPayment(t *testing.T) {
	f := newFixture(tentative(testNow.Add(time.Hour)))

	resp, err := f.uc.Execute(context.Background(), confirmRequest())
	require.NoError(t, err)

	assert.Equal(t, testNow, resp.Now)
	b := resp.Booking
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Nil(t, b.HoldExpiresAt)
	require.NotNil(t, b.Payment)
	assert.Equal(t, "1100.00", b.Payment.TotalInclTax.StringFixed(2))
	assert.Equal(t, "550.00", b.Payment.DepositAmount.StringFixed(2))
	assert.Equal(t, "550.00", b.Payment.BalanceDue.StringFixed(2))

	assert.Equal(t, domain.StatusTentative, f.repo.expected)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, []string{metrics.ResultOK}, f.transitions.results)
}

func TestExecute_ReplacesStoredTerms(t *testing.T) {
	f := newFixture(tentative(testNow.Add(time.Hour)))

	resp, err := f.uc.Execute(context.Background(), &Request{
		AccountID:    1,
		BookingID:    7,
		TaxType:      ptr.Ptr("exempt"),
		DepositType:  ptr.Ptr("fixed"),
		DepositValue: ptr.Ptr(decimal.NewFromInt(100)),
	})
	require.NoError(t, err)

	b := resp.Booking
	assert.Equal(t, domain.TaxExempt, b.TaxType)
	assert.Equal(t, domain.DepositFixed, b.DepositType)
	assert.Equal(t, "1000.00", b.Payment.TotalInclTax.StringFixed(2))
	assert.Equal(t, "900.00", b.Payment.BalanceDue.StringFixed(2))
}

func TestExecute_NoDepositWithoutValue(t *testing.T) {
	f := newFixture(tentative(testNow.Add(time.Hour)))

	resp, err := f.uc.Execute(context.Background(), &Request{
		AccountID:   1,
		BookingID:   7,
		TaxType:     ptr.Ptr("standard"),
		DepositType: ptr.Ptr("none"),
	})
	require.NoError(t, err)

	b := resp.Booking
	assert.Equal(t, domain.DepositNone, b.DepositType)
	assert.Equal(t, "0.00", b.Payment.DepositAmount.StringFixed(2))
	assert.Equal(t, "1100.00", b.Payment.BalanceDue.StringFixed(2))
}

func TestExecute_RequiresTerms(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{"no terms", func(r *Request) { r.TaxType, r.DepositType, r.DepositValue = nil, nil, nil }},
		{"missing tax type", func(r *Request) { r.TaxType = nil }},
		{"empty tax type", func(r *Request) { r.TaxType = ptr.Ptr("") }},
		{"missing deposit type", func(r *Request) { r.DepositType = nil }},
		{"missing deposit value", func(r *Request) { r.DepositValue = nil }},
		{"unknown tax type", func(r *Request) { r.TaxType = ptr.Ptr("reduced") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tentative(testNow.Add(time.Hour)))
			req := confirmRequest()
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, f.repo.updated)
			assert.Zero(t, f.tx.calls)
		})
	}
}

func TestExecute_ExpiredHold(t *testing.T) {
	f := newFixture(tentative(testNow.Add(-time.Second)))

	_, err := f.uc.Execute(context.Background(), confirmRequest())

	var expired *domain.ExpiredHoldError
	require.ErrorAs(t, err, &expired)
	assert.Equal(t, int64(7), expired.BookingID)
	assert.Nil(t, f.repo.updated)
	assert.Equal(t, []string{metrics.ResultExpiredHold}, f.transitions.results)
}

func TestExecute_InvalidTransition(t *testing.T) {
	b := tentative(testNow.Add(time.Hour))
	b.Status = domain.StatusCompleted
	b.HoldExpiresAt = nil
	f := newFixture(b)

	_, err := f.uc.Execute(context.Background(), confirmRequest())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, []string{metrics.ResultInvalidTransition}, f.transitions.results)
}

func TestExecute_InvalidDeposit(t *testing.T) {
	f := newFixture(tentative(testNow.Add(time.Hour)))

	_, err := f.uc.Execute(context.Background(), &Request{
		AccountID:    1,
		BookingID:    7,
		TaxType:      ptr.Ptr("standard"),
		DepositType:  ptr.Ptr("percentage"),
		DepositValue: ptr.Ptr(decimal.NewFromInt(150)),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDepositConfiguration)
	assert.Nil(t, f.repo.updated)
}

func TestExecute_Conflicts(t *testing.T) {
	t.Run("status guard", func(t *testing.T) {
		f := newFixture(tentative(testNow.Add(time.Hour)))
		f.repo.updateErr = bookingRepo.ErrStatusConflict

		_, err := f.uc.Execute(context.Background(), confirmRequest())
		assert.ErrorIs(t, err, ErrStatusConflict)
		assert.Equal(t, []string{metrics.ResultConflict}, f.transitions.results)
	})

	t.Run("serialization failure on commit", func(t *testing.T) {
		f := newFixture(tentative(testNow.Add(time.Hour)))
		f.tx.commitErr = fmt.Errorf("%w: commit: could not serialize access", txmanager.ErrSerialization)

		_, err := f.uc.Execute(context.Background(), confirmRequest())
		assert.ErrorIs(t, err, ErrStatusConflict)
	})
}

func TestExecute_Errors(t *testing.T) {
	f := newFixture(nil)
	_, err := f.uc.Execute(context.Background(), confirmRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)

	req := confirmRequest()
	req.BookingID = 0
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	f = newFixture(tentative(testNow.Add(time.Hour)))
	f.uc.settings = fakeSettings{err: errors.New("redis")}
	_, err = f.uc.Execute(context.Background(), confirmRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

package bookings

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/booking"
)

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passthroughTx struct{ calls int }

func (p *passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type fakeBookingRepo struct {
	mu        sync.Mutex
	bookings  map[int64]*domain.Booking
	updateErr error
	listErr   error
	lastList  domain.BookingsFilter
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) GetByID(_ context.Context, accountID, id int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.AccountID != accountID {
		return nil, bookingRepo.ErrBookingNotFound
	}
	c := *b
	return &c, nil
}

func (r *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastList = filter
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if b.AccountID == filter.AccountID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateLifecycle(_ context.Context, b *domain.Booking, expected domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	stored, ok := r.bookings[b.ID]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if stored.Status != expected {
		return bookingRepo.ErrStatusConflict
	}
	c := *b
	r.bookings[b.ID] = &c
	return nil
}

type fakeSettings struct {
	settings *domain.AccountSettings
	err      error
}

func (f fakeSettings) Resolve(_ context.Context, accountID int64) (*domain.AccountSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.settings != nil {
		return f.settings, nil
	}
	return domain.DefaultAccountSettings(accountID), nil
}

type transitionRecord struct{ from, to, result string }

type fakeTransitions struct {
	records []transitionRecord
}

func (f *fakeTransitions) ObserveTransition(from, to, result string) {
	f.records = append(f.records, transitionRecord{from, to, result})
}

func newTestService(repo *fakeBookingRepo, transitions *fakeTransitions) *Service {
	svc := NewService(repo, fakeSettings{}, &passthroughTx{}, transitions, nopLogger{})
	svc.timeProvider = fixedTime{testNow}
	return svc
}

type bookingOpt func(b *domain.Booking)

func withHold(expires time.Time) bookingOpt {
	return func(b *domain.Booking) { b.HoldExpiresAt = &expires }
}

func withCustomer(name, email string) bookingOpt {
	return func(b *domain.Booking) {
		b.CustomerName = name
		b.CustomerEmail = email
	}
}

func withTotal(v int64) bookingOpt {
	return func(b *domain.Booking) { b.TotalValue = decimal.NewFromInt(v) }
}

func withCreatedAt(t time.Time) bookingOpt {
	return func(b *domain.Booking) { b.CreatedAt = t }
}

func newBooking(id, resourceID int64, startHour, endHour int, status domain.BookingStatus, opts ...bookingOpt) *domain.Booking {
	day := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
	b := &domain.Booking{
		ID:           id,
		AccountID:    1,
		ResourceID:   resourceID,
		CustomerName: "Customer",
		Start:        day.Add(time.Duration(startHour) * time.Hour),
		End:          day.Add(time.Duration(endHour) * time.Hour),
		Status:       status,
		TaxType:      domain.TaxStandard,
		DepositType:  domain.DepositNone,
		TotalValue:   decimal.NewFromInt(1000),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

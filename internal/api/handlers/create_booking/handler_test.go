package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-VenueBooking/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *createBooking.Request
	err error
}

// createdAt момент создания, который возвращает use case
var createdAt = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	hold := createdAt.Add(48 * time.Hour)
	return &createBooking.Response{Now: createdAt, Booking: &domain.Booking{
		ID:            42,
		AccountID:     req.AccountID,
		ResourceID:    req.ResourceID,
		CustomerName:  req.CustomerName,
		Start:         req.Start,
		End:           req.End,
		Status:        domain.StatusTentative,
		HoldExpiresAt: &hold,
		TotalValue:    req.TotalValue,
		TaxType:       domain.TaxStandard,
		DepositType:   domain.DepositNone,
	}}, nil
}

const validBody = `{
	"resourceId": 5,
	"customerName": "Anna",
	"customerEmail": "anna@example.com",
	"start": "2025-10-20T09:00:00Z",
	"end": "2025-10-20T11:00:00Z",
	"totalValue": "1000.50"
}`

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req = req.WithContext(middleware.WithAccountID(req.Context(), 1))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := post(NewHandler(uc, nopLogger{}), validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(1), uc.got.AccountID)
	assert.Equal(t, "1000.5", uc.got.TotalValue.String())
	assert.Equal(t, 9, uc.got.Start.Hour())

	var body models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, "tentative", body.Status)
	assert.False(t, body.HoldExpired)
	assert.Equal(t, "1000.50", body.TotalValue)
	assert.NotNil(t, body.HoldExpiresAt)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"unknown field", `{"foo":1}`, nil, http.StatusBadRequest},
		{"empty body", ``, nil, http.StatusBadRequest},
		{"invalid range", validBody, &domain.InvalidRangeError{}, http.StatusBadRequest},
		{"hold in past", validBody, createBooking.ErrHoldInPast, http.StatusBadRequest},
		{"invalid input", validBody, fmt.Errorf("%w: name", createBooking.ErrInvalidInput), http.StatusBadRequest},
		{"invalid deposit", validBody, &domain.InvalidDepositConfigurationError{Type: domain.DepositPercentage}, http.StatusBadRequest},
		{"internal", validBody, fmt.Errorf("%w: db", createBooking.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

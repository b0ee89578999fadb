package get_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/calendar"
	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	getCalendarLayout "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_calendar_layout"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *getCalendarLayout.Request
	resp *getCalendarLayout.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getCalendarLayout.Request) (*getCalendarLayout.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestToUseCaseRequest(t *testing.T) {
	req, err := ToUseCaseRequest(1, "2025-10-13", "Europe/Moscow", "5", "true")
	require.NoError(t, err)

	assert.Equal(t, int64(1), req.AccountID)
	assert.Equal(t, "Europe/Moscow", req.WeekStart.Location().String())
	assert.Equal(t, 13, req.WeekStart.Day())
	require.NotNil(t, req.ResourceID)
	assert.Equal(t, int64(5), *req.ResourceID)
	assert.True(t, req.IncludeCancelled)

	_, err = ToUseCaseRequest(1, "", "", "", "")
	assert.Error(t, err)
	_, err = ToUseCaseRequest(1, "13.10.2025", "", "", "")
	assert.Error(t, err)
	_, err = ToUseCaseRequest(1, "2025-10-13", "Mars/Olympus", "", "")
	assert.Error(t, err)
	_, err = ToUseCaseRequest(1, "2025-10-13", "", "x", "")
	assert.Error(t, err)
	_, err = ToUseCaseRequest(1, "2025-10-13", "", "", "maybe")
	assert.Error(t, err)
}

func TestHandle_RendersLayout(t *testing.T) {
	weekStart := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &getCalendarLayout.Response{
		WeekStart: weekStart,
		Grid:      calendar.DefaultGrid(),
		Days: []calendar.DayLayout{{
			Date: weekStart,
			Events: []domain.CalendarEvent{{
				ID:        1,
				Start:     weekStart.Add(9 * time.Hour),
				End:       weekStart.Add(10 * time.Hour),
				Status:    domain.StatusConfirmed,
				Lane:      1,
				LaneCount: 2,
				RowStart:  12,
				RowSpan:   4,
			}},
		}},
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar?weekStart=2025-10-13", nil)
	req = req.WithContext(middleware.WithAccountID(req.Context(), 1))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-10-13", body.WeekStart)
	assert.Equal(t, 72, body.Grid.SlotsPerDay)
	require.Len(t, body.Days, 1)
	require.Len(t, body.Days[0].Events, 1)

	event := body.Days[0].Events[0]
	assert.Equal(t, 1, event.Lane)
	assert.Equal(t, 2, event.LaneCount)
	assert.InDelta(t, 50.0, event.WidthPercent, 1e-9)
	assert.InDelta(t, 50.0, event.LeftPercent, 1e-9)
	assert.Equal(t, 12, event.RowStart)
}

func TestHandle_Errors(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar?weekStart=2025-10-13", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar", nil)
	req = req.WithContext(middleware.WithAccountID(req.Context(), 1))
	rec = httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = NewHandler(&fakeUseCase{err: getCalendarLayout.ErrInternal}, nopLogger{})
	req = httptest.NewRequest(http.MethodGet, "/api/v1/calendar?weekStart=2025-10-13", nil)
	req = req.WithContext(middleware.WithAccountID(req.Context(), 1))
	rec = httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

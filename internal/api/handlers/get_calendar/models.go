package get_calendar

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	_ "time/tzdata" // tz без системной базы часовых поясов

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	getCalendarLayout "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_calendar_layout"
)

var errMissingWeekStart = errors.New("weekStart is required")

// GridResponse параметры сетки
type GridResponse struct {
	WindowStartHour int `json:"windowStartHour"`
	WindowEndHour   int `json:"windowEndHour"`
	SlotMinutes     int `json:"slotMinutes"`
	SlotsPerDay     int `json:"slotsPerDay"`
}

// EventResponse событие календаря с позицией в сетке и дорожке
type EventResponse struct {
	ID           int64   `json:"id"`
	ResourceID   int64   `json:"resourceId"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	Status       string  `json:"status"`
	Lane         int     `json:"lane"`
	LaneCount    int     `json:"laneCount"`
	RowStart     int     `json:"rowStart"`
	RowSpan      int     `json:"rowSpan"`
	WidthPercent float64 `json:"widthPercent"`
	LeftPercent  float64 `json:"leftPercent"`
}

// DayResponse события одного дня
type DayResponse struct {
	Date   string          `json:"date"`
	Events []EventResponse `json:"events"`
}

// CalendarResponse недельная раскладка
type CalendarResponse struct {
	WeekStart string        `json:"weekStart"`
	Timezone  string        `json:"timezone"`
	Grid      GridResponse  `json:"grid"`
	Days      []DayResponse `json:"days"`
}

// ToUseCaseRequest формирует запрос к use case из query параметров.
// tz задает часовой пояс разметки дней (по умолчанию UTC)
func ToUseCaseRequest(accountID int64, weekStartStr, tzStr, resourceIDStr, includeCancelledStr string) (*getCalendarLayout.Request, error) {
	if weekStartStr == "" {
		return nil, errMissingWeekStart
	}

	loc := time.UTC
	if tzStr != "" {
		parsed, err := time.LoadLocation(tzStr)
		if err != nil {
			return nil, fmt.Errorf("invalid tz %q: %w", tzStr, err)
		}
		loc = parsed
	}

	weekStart, err := time.ParseInLocation(domain.DateFormat, weekStartStr, loc)
	if err != nil {
		return nil, err
	}

	req := &getCalendarLayout.Request{
		AccountID: accountID,
		WeekStart: weekStart,
	}

	if resourceIDStr != "" {
		resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ResourceID = &resourceID
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}

// FromUseCaseResponse конвертирует раскладку в HTTP ответ
func FromUseCaseResponse(resp *getCalendarLayout.Response) *CalendarResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		events := make([]EventResponse, 0, len(day.Events))
		for i := range day.Events {
			e := &day.Events[i]
			events = append(events, EventResponse{
				ID:           e.ID,
				ResourceID:   e.ResourceID,
				Start:        e.Start.Format(time.RFC3339),
				End:          e.End.Format(time.RFC3339),
				Status:       string(e.Status),
				Lane:         e.Lane,
				LaneCount:    e.LaneCount,
				RowStart:     e.RowStart,
				RowSpan:      e.RowSpan,
				WidthPercent: e.WidthPercent(),
				LeftPercent:  e.LeftPercent(),
			})
		}
		days = append(days, DayResponse{
			Date:   day.Date.Format(domain.DateFormat),
			Events: events,
		})
	}

	return &CalendarResponse{
		WeekStart: resp.WeekStart.Format(domain.DateFormat),
		Timezone:  resp.WeekStart.Location().String(),
		Grid: GridResponse{
			WindowStartHour: resp.Grid.WindowStartHour,
			WindowEndHour:   resp.Grid.WindowEndHour,
			SlotMinutes:     resp.Grid.SlotMinutes,
			SlotsPerDay:     resp.Grid.SlotsPerDay(),
		},
		Days: days,
	}
}

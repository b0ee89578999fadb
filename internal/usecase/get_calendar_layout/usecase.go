package get_calendar_layout

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBooking/internal/calendar"
	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// UseCase use case для построения недельной раскладки календаря
type UseCase struct {
	bookingRepo  BookingRepository
	grid         calendar.Grid
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, grid calendar.Grid, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		grid:         grid,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute загружает бронирования недели и раскладывает их по сетке и дорожкам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendarLayout: validation failed: %v", err)
		return nil, err
	}

	weekStart := calendar.StartOfDay(req.WeekStart)
	weekEnd := weekStart.AddDate(0, 0, domain.DaysInWeek)

	uc.logger.Info("GetCalendarLayout: account=%d, week=%s, resource=%v",
		req.AccountID, weekStart.Format(domain.DateFormat), req.ResourceID)

	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		AccountID:  req.AccountID,
		ResourceID: req.ResourceID,
		From:       &weekStart,
		To:         &weekEnd,
	})
	if err != nil {
		uc.logger.Error("GetCalendarLayout: failed to list bookings for account=%d: %v", req.AccountID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	days, err := calendar.LayoutWeek(bookings, weekStart, uc.grid, calendar.LayoutOptions{
		ResourceID:       req.ResourceID,
		IncludeCancelled: req.IncludeCancelled,
	}, uc.timeProvider.Now())
	if err != nil {
		// Некорректный диапазон в сохраненных данных или сетка из конфигурации
		if errors.Is(err, domain.ErrInvalidRange) {
			uc.logger.Error("GetCalendarLayout: stored booking has invalid range: %v", err)
		} else {
			uc.logger.Error("GetCalendarLayout: layout failed: %v", err)
		}
		return nil, fmt.Errorf("%w: layout failed: %v", ErrInternal, err)
	}

	events := 0
	for _, day := range days {
		events += len(day.Events)
	}
	uc.logger.Info("GetCalendarLayout: account=%d, week=%s, events=%d",
		req.AccountID, weekStart.Format(domain.DateFormat), events)

	return &Response{
		WeekStart: weekStart,
		Grid:      uc.grid,
		Days:      days,
	}, nil
}

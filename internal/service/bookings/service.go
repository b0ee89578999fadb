package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueBooking/pkg/metrics"
)

// Service сервис для работы с бронированиями: просмотр, отмена, завершение, расчет депозита.
// Подтверждение с расчетом платежа выполняет usecase confirm_booking
type Service struct {
	bookingRepo  BookingRepository
	settings     SettingsProvider
	txManager    TransactionManager
	metrics      TransitionMetrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	settings SettingsProvider,
	txManager TransactionManager,
	transitions TransitionMetrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		settings:     settings,
		txManager:    txManager,
		metrics:      transitions,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование аккаунта.
// Истекший холд в ответе отображается как cancelled, в БД статус не меняется
func (s *Service) GetByID(ctx context.Context, accountID, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found for account=%d", id, accountID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, s.timeProvider.Now()), nil
}

// List возвращает бронирования аккаунта с фильтрацией, поиском, сортировкой и счетчиками по статусам
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, order, err := toViewParams(req)
	if err != nil {
		s.logger.Warn("List: invalid parameters for account=%d: %v", req.AccountID, err)
		return nil, err
	}

	// Статус не передаем в БД: фильтр идет по эффективному статусу
	stored, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		AccountID:  req.AccountID,
		ResourceID: req.ResourceID,
		From:       req.From,
		To:         req.To,
	})
	if err != nil {
		s.logger.Error("List: repository error for account=%d: %v", req.AccountID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	view := DeriveView(stored, filter, order, now)

	resp := &models.BookingListResponse{
		Bookings: make([]*models.BookingResponse, 0, len(view.Items)),
		Total:    len(view.Items),
		Counts:   make(map[string]int, len(view.Counts)),
	}
	for _, item := range view.Items {
		resp.Bookings = append(resp.Bookings, models.FromDomainBooking(item.Booking, now))
	}
	for status, n := range view.Counts {
		resp.Counts[string(status)] = n
	}

	return resp, nil
}

// Cancel отменяет tentative или confirmed бронирование
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason is longer than %d", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	s.logger.Info("Cancel: cancelling booking id=%d for account=%d", req.BookingID, req.AccountID)
	return s.transition(ctx, req.AccountID, req.BookingID, domain.StatusCancelled, func(b *domain.Booking, now time.Time) (domain.Booking, error) {
		return b.Cancel(req.Reason, now)
	})
}

// Complete завершает подтвержденное бронирование (допускается до окончания)
func (s *Service) Complete(ctx context.Context, accountID, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Complete: completing booking id=%d for account=%d", id, accountID)
	return s.transition(ctx, accountID, id, domain.StatusCompleted, func(b *domain.Booking, now time.Time) (domain.Booking, error) {
		return b.Complete(now)
	})
}

// UpdateStatus универсальный переход статуса для completed и cancelled.
// Переход в confirmed требует условий оплаты и выполняется через confirm_booking
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidInput, req.Status)
	}

	switch status {
	case domain.StatusCancelled:
		return s.Cancel(ctx, &models.CancelBookingRequest{
			AccountID: req.AccountID,
			BookingID: req.BookingID,
			Reason:    req.Reason,
		})
	case domain.StatusCompleted:
		return s.Complete(ctx, req.AccountID, req.BookingID)
	case domain.StatusConfirmed:
		return nil, fmt.Errorf("%w: confirmation requires deposit terms", ErrInvalidInput)
	default:
		// В tentative перейти нельзя ни из одного статуса
		return s.transition(ctx, req.AccountID, req.BookingID, status, func(b *domain.Booking, now time.Time) (domain.Booking, error) {
			return b.TransitionTo(status, now)
		})
	}
}

// QuoteDeposit рассчитывает итог с налогом, депозит и остаток без сохранения
func (s *Service) QuoteDeposit(ctx context.Context, req *models.DepositQuoteRequest) (*models.DepositQuoteResponse, error) {
	taxType := domain.TaxStandard
	if req.TaxType != "" {
		parsed, err := domain.ParseTaxType(req.TaxType)
		if err != nil {
			return nil, fmt.Errorf("%w: taxType %q", ErrInvalidInput, req.TaxType)
		}
		taxType = parsed
	}

	depositType, err := domain.ParseDepositType(req.DepositType)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.Resolve(ctx, req.AccountID)
	if err != nil {
		s.logger.Error("QuoteDeposit: failed to resolve settings for account=%d: %v", req.AccountID, err)
		return nil, fmt.Errorf("%w: QuoteDeposit - settings error: %v", ErrInternal, err)
	}

	payment, err := domain.PreparePayment(req.TotalValue, domain.ConfirmTerms{
		TaxType:        taxType,
		TaxRatePercent: settings.EffectiveTaxRate(taxType),
		DepositType:    depositType,
		DepositValue:   req.DepositValue,
	})
	if err != nil {
		return nil, err
	}

	return &models.DepositQuoteResponse{
		TaxType:        string(taxType),
		TaxRatePercent: payment.TaxRatePercent.String(),
		TotalValue:     req.TotalValue.StringFixed(2),
		TotalInclTax:   payment.TotalInclTax.StringFixed(2),
		DepositType:    string(depositType),
		DepositAmount:  payment.DepositAmount.StringFixed(2),
		BalanceDue:     payment.BalanceDue.StringFixed(2),
	}, nil
}

type applyFunc func(b *domain.Booking, now time.Time) (domain.Booking, error)

// transition читает бронирование с блокировкой, применяет переход и сохраняет его
// с проверкой исходного статуса
func (s *Service) transition(ctx context.Context, accountID, id int64, to domain.BookingStatus, apply applyFunc) (*models.BookingResponse, error) {
	now := s.timeProvider.Now()

	var result domain.Booking
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetByID(ctx, accountID, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: transition - get booking: %v", ErrInternal, err)
		}

		next, err := apply(booking, now)
		if err != nil {
			s.metrics.ObserveTransition(string(booking.Status), string(to), transitionResult(err))
			return err
		}

		if err := s.bookingRepo.UpdateLifecycle(ctx, &next, booking.Status); err != nil {
			s.metrics.ObserveTransition(string(booking.Status), string(to), transitionResult(err))
			switch {
			case errors.Is(err, bookingRepo.ErrStatusConflict):
				return ErrStatusConflict
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: transition - update booking: %v", ErrInternal, err)
		}

		s.metrics.ObserveTransition(string(booking.Status), string(to), metrics.ResultOK)
		result = next
		return nil
	})
	if err != nil {
		s.logTransitionError(id, to, err)
		return nil, err
	}

	s.logger.Info("transition: booking id=%d moved to %s", id, to)
	return models.FromDomainBooking(&result, now), nil
}

func (s *Service) logTransitionError(id int64, to domain.BookingStatus, err error) {
	switch {
	case errors.Is(err, ErrInternal):
		s.logger.Error("transition: booking id=%d to %s failed: %v", id, to, err)
	default:
		s.logger.Warn("transition: booking id=%d to %s rejected: %v", id, to, err)
	}
}

func transitionResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return metrics.ResultInvalidTransition
	case errors.Is(err, domain.ErrExpiredHold):
		return metrics.ResultExpiredHold
	case errors.Is(err, bookingRepo.ErrStatusConflict):
		return metrics.ResultConflict
	default:
		return metrics.ResultError
	}
}

func toViewParams(req *models.ListBookingsRequest) (ViewFilter, ViewSort, error) {
	filter := ViewFilter{
		ResourceID: req.ResourceID,
		From:       req.From,
		To:         req.To,
		Query:      req.Query,
	}

	if req.Status != nil && *req.Status != "" {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			return filter, ViewSort{}, fmt.Errorf("%w: status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	if req.From != nil && req.To != nil && !req.To.After(*req.From) {
		return filter, ViewSort{}, domain.ValidateRange(*req.From, *req.To)
	}

	field, err := ParseSortField(req.Sort)
	if err != nil {
		return filter, ViewSort{}, fmt.Errorf("%w: sort %q", ErrInvalidInput, req.Sort)
	}

	var desc bool
	switch req.Order {
	case "", "asc":
	case "desc":
		desc = true
	default:
		return filter, ViewSort{}, fmt.Errorf("%w: order %q", ErrInvalidInput, req.Order)
	}

	return filter, ViewSort{Field: field, Desc: desc}, nil
}

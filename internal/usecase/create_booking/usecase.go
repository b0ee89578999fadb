package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/metrics"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	settings     SettingsProvider
	metrics      TransitionMetrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settings SettingsProvider,
	transitions TransitionMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settings:     settings,
		metrics:      transitions,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает бронирование.
// Tentative получает холд, confirmed сразу получает рассчитанные суммы платежа.
// Пересечения с другими бронированиями допустимы: календарь раскладывает их по дорожкам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: account=%d, resource=%d, start=%s, end=%s, status=%q",
		req.AccountID, req.ResourceID, req.Start.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.End.Format(domain.DateFormat+" "+domain.TimeFormat), req.Status)

	// 1. Валидация входных данных
	parsed, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Настройки аккаунта: ставка налога, длительность холда, депозит по умолчанию
	settings, err := uc.settings.Resolve(ctx, req.AccountID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to resolve settings for account=%d: %v", req.AccountID, err)
		return nil, fmt.Errorf("%w: failed to resolve settings: %v", ErrInternal, err)
	}

	// Без явного типа депозита берутся значения аккаунта по умолчанию
	depositType, depositValue := settings.DefaultDepositType, settings.DefaultDepositValue
	if parsed.depositType != nil {
		depositType, depositValue = *parsed.depositType, parsed.depositValue
	}
	if err := domain.ValidateDeposit(depositType, depositValue); err != nil {
		uc.logger.Warn("CreateBooking: invalid deposit: %v", err)
		return nil, err
	}

	// 3. Собираем бронирование
	booking := &domain.Booking{
		AccountID:     req.AccountID,
		ResourceID:    req.ResourceID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		Start:         req.Start,
		End:           req.End,
		Status:        parsed.status,
		TotalValue:    req.TotalValue,
		TaxType:       parsed.taxType,
		DepositType:   depositType,
		DepositValue:  depositValue,
		Notes:         req.Notes,
	}

	switch parsed.status {
	case domain.StatusTentative:
		hold := now.Add(settings.HoldDuration())
		if req.HoldExpiresAt != nil {
			if !req.HoldExpiresAt.After(now) {
				uc.logger.Warn("CreateBooking: hold expiry %s is not in the future", req.HoldExpiresAt.Format(domain.DateFormat))
				return nil, ErrHoldInPast
			}
			hold = *req.HoldExpiresAt
		}
		booking.HoldExpiresAt = &hold

	case domain.StatusConfirmed:
		payment, err := domain.PreparePayment(booking.TotalValue, domain.ConfirmTerms{
			TaxType:        parsed.taxType,
			TaxRatePercent: settings.EffectiveTaxRate(parsed.taxType),
			DepositType:    depositType,
			DepositValue:   depositValue,
		})
		if err != nil {
			uc.logger.Warn("CreateBooking: payment calculation failed: %v", err)
			return nil, err
		}
		booking.Payment = &payment
		booking.ConfirmedAt = &now
	}

	// 4. Сохраняем
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking for account=%d: %v", req.AccountID, err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	if created.Status == domain.StatusConfirmed {
		uc.metrics.ObserveTransition("", string(domain.StatusConfirmed), metrics.ResultOK)
	}

	uc.logger.Info("CreateBooking: booking id=%d created with status=%s", created.ID, created.Status)
	return &Response{Booking: created, Now: now}, nil
}

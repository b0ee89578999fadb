package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueBooking/pkg/metrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/txmanager"
)

// UseCase use case для подтверждения tentative бронирования с расчетом платежа
type UseCase struct {
	bookingRepo  BookingRepository
	settings     SettingsProvider
	txManager    TransactionManager
	metrics      TransitionMetrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settings SettingsProvider,
	txManager TransactionManager,
	transitions TransitionMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settings:     settings,
		txManager:    txManager,
		metrics:      transitions,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute подтверждает бронирование.
// Строка блокируется в сериализуемой транзакции; запись проходит только если
// статус не изменился с момента чтения. Истекший холд не подтверждается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: account=%d, booking=%d", req.AccountID, req.BookingID)

	// 1. Валидация входных данных
	parsed, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Налоговая ставка аккаунта (читается вне транзакции, через кэш)
	settings, err := uc.settings.Resolve(ctx, req.AccountID)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to resolve settings for account=%d: %v", req.AccountID, err)
		return nil, fmt.Errorf("%w: failed to resolve settings: %v", ErrInternal, err)
	}

	terms := buildTerms(parsed, settings)
	now := uc.timeProvider.Now()
	var confirmed domain.Booking

	// 3. Читаем с блокировкой, подтверждаем, сохраняем с проверкой исходного статуса
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.AccountID, req.BookingID)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			case errors.Is(err, bookingRepo.ErrStatusConflict):
				return ErrStatusConflict
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		next, err := booking.Confirm(terms, now)
		if err != nil {
			uc.metrics.ObserveTransition(string(booking.Status), string(domain.StatusConfirmed), transitionResult(err))
			return err
		}

		if err := uc.bookingRepo.UpdateLifecycle(txCtx, &next, booking.Status); err != nil {
			uc.metrics.ObserveTransition(string(booking.Status), string(domain.StatusConfirmed), transitionResult(err))
			switch {
			case errors.Is(err, bookingRepo.ErrStatusConflict):
				return ErrStatusConflict
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		uc.metrics.ObserveTransition(string(booking.Status), string(domain.StatusConfirmed), metrics.ResultOK)
		confirmed = next
		return nil
	})
	if errors.Is(err, txmanager.ErrSerialization) {
		// Конкурентная транзакция зафиксировалась раньше
		err = fmt.Errorf("%w: %v", ErrStatusConflict, err)
	}
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("ConfirmBooking: booking id=%d: %v", req.BookingID, err)
		} else {
			uc.logger.Warn("ConfirmBooking: booking id=%d rejected: %v", req.BookingID, err)
		}
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: booking id=%d confirmed, total=%s, deposit=%s, balance=%s",
		confirmed.ID, confirmed.Payment.TotalInclTax.StringFixed(2),
		confirmed.Payment.DepositAmount.StringFixed(2), confirmed.Payment.BalanceDue.StringFixed(2))

	return &Response{Booking: &confirmed, Now: now}, nil
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

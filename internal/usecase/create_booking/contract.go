package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// SettingsProvider источник настроек аккаунта (ставка налога, холд, депозит по умолчанию)
type SettingsProvider interface {
	Resolve(ctx context.Context, accountID int64) (*domain.AccountSettings, error)
}

// TransitionMetrics счетчик переходов; создание сразу в confirmed считается переходом из ""
type TransitionMetrics interface {
	ObserveTransition(from, to, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

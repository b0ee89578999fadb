package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, accountID, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateLifecycle(ctx context.Context, booking *domain.Booking, expected domain.BookingStatus) error
}

// SettingsProvider источник настроек аккаунта (налоговая ставка)
type SettingsProvider interface {
	Resolve(ctx context.Context, accountID int64) (*domain.AccountSettings, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TransitionMetrics счетчик переходов статусов
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

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

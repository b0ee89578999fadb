package settings

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// SettingsRepository интерфейс хранилища настроек аккаунта
type SettingsRepository interface {
	Get(ctx context.Context, accountID int64) (*domain.AccountSettings, error)
	Upsert(ctx context.Context, s *domain.AccountSettings) (*domain.AccountSettings, error)
}

// SettingsCache кэш настроек (Redis или заглушка)
type SettingsCache interface {
	Get(ctx context.Context, accountID int64) (*domain.AccountSettings, bool, error)
	Set(ctx context.Context, s *domain.AccountSettings) error
	Invalidate(ctx context.Context, accountID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	settingsRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/settings"
	"github.com/m04kA/SMC-VenueBooking/internal/service/settings/models"
)

// Defaults значения для аккаунтов без сохраненных настроек
type Defaults struct {
	TaxRatePercent    decimal.Decimal
	HoldDurationHours int
}

// Service сервис настроек аккаунта: налоговая ставка, длительность холда, депозит по умолчанию
type Service struct {
	repo     SettingsRepository
	cache    SettingsCache
	defaults Defaults
	logger   Logger
}

func NewService(repo SettingsRepository, cache SettingsCache, defaults Defaults, logger Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		defaults: defaults,
		logger:   logger,
	}
}

// Get возвращает настройки аккаунта для API
func (s *Service) Get(ctx context.Context, accountID int64) (*models.SettingsResponse, error) {
	settings, err := s.Resolve(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSettings(settings), nil
}

// Resolve возвращает доменные настройки: из кэша, из БД или значения по умолчанию.
// Ошибки кэша не прерывают запрос
func (s *Service) Resolve(ctx context.Context, accountID int64) (*domain.AccountSettings, error) {
	cached, ok, err := s.cache.Get(ctx, accountID)
	if err != nil {
		s.logger.Warn("Resolve: cache read failed for account=%d: %v", accountID, err)
	}
	if ok {
		return cached, nil
	}

	settings, err := s.repo.Get(ctx, accountID)
	switch {
	case errors.Is(err, settingsRepo.ErrSettingsNotFound):
		settings = s.defaultSettings(accountID)
	case err != nil:
		s.logger.Error("Resolve: repository error for account=%d: %v", accountID, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.Set(ctx, settings); err != nil {
		s.logger.Warn("Resolve: cache write failed for account=%d: %v", accountID, err)
	}

	return settings, nil
}

// Update валидирует и сохраняет настройки, затем сбрасывает кэш аккаунта
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for account=%d", req.AccountID)

	settings, err := s.validate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for account=%d: %v", req.AccountID, err)
		return nil, err
	}

	saved, err := s.repo.Upsert(ctx, settings)
	if err != nil {
		s.logger.Error("Update: repository error for account=%d: %v", req.AccountID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.Invalidate(ctx, req.AccountID); err != nil {
		s.logger.Warn("Update: cache invalidation failed for account=%d: %v", req.AccountID, err)
	}

	s.logger.Info("Update: settings saved for account=%d", req.AccountID)
	return models.FromDomainSettings(saved), nil
}

func (s *Service) defaultSettings(accountID int64) *domain.AccountSettings {
	settings := domain.DefaultAccountSettings(accountID)
	// Нулевой Defaults означает, что значения из конфигурации не переданы
	if s.defaults.HoldDurationHours > 0 {
		settings.HoldDurationHours = s.defaults.HoldDurationHours
		settings.TaxRatePercent = s.defaults.TaxRatePercent
	}
	return settings
}

func (s *Service) validate(req *models.UpdateSettingsRequest) (*domain.AccountSettings, error) {
	if req.TaxRatePercent.IsNegative() || req.TaxRatePercent.GreaterThan(decimal.NewFromInt(domain.MaxTaxRatePercent)) {
		return nil, fmt.Errorf("%w: taxRatePercent must be within [0,%d]", ErrInvalidInput, domain.MaxTaxRatePercent)
	}
	if req.HoldDurationHours <= 0 || req.HoldDurationHours > domain.MaxHoldDurationHours {
		return nil, fmt.Errorf("%w: holdDurationHours must be within [1,%d]", ErrInvalidInput, domain.MaxHoldDurationHours)
	}

	depositType, err := domain.ParseDepositType(req.DefaultDepositType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := domain.ValidateDeposit(depositType, req.DefaultDepositValue); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return &domain.AccountSettings{
		AccountID:           req.AccountID,
		TaxRatePercent:      req.TaxRatePercent,
		HoldDurationHours:   req.HoldDurationHours,
		DefaultDepositType:  depositType,
		DefaultDepositValue: req.DefaultDepositValue,
	}, nil
}

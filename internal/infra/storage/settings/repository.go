package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-VenueBooking/pkg/txmanager"
)

const tableSettings = "account_settings"

// Repository репозиторий настроек аккаунта (налог, длительность холда, депозит по умолчанию)
type Repository struct {
	db txmanager.DBExecutor
}

func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройки аккаунта
func (r *Repository) Get(ctx context.Context, accountID int64) (*domain.AccountSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectQuery(accountID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s                    domain.AccountSettings
		createdAt, updatedAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.AccountID,
		&s.TaxRatePercent,
		&s.HoldDurationHours,
		&s.DefaultDepositType,
		&s.DefaultDepositValue,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert создает или обновляет настройки аккаунта
func (r *Repository) Upsert(ctx context.Context, s *domain.AccountSettings) (*domain.AccountSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := upsertQuery(s).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

func selectQuery(accountID int64) squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"account_id",
		"tax_rate_percent",
		"hold_duration_hours",
		"default_deposit_type",
		"default_deposit_value",
		"created_at",
		"updated_at",
	).
		From(tableSettings).
		Where(squirrel.Eq{"account_id": accountID})
}

func upsertQuery(s *domain.AccountSettings) squirrel.InsertBuilder {
	return psqlbuilder.Insert(tableSettings).
		Columns(
			"account_id",
			"tax_rate_percent",
			"hold_duration_hours",
			"default_deposit_type",
			"default_deposit_value",
		).
		Values(
			s.AccountID,
			s.TaxRatePercent,
			s.HoldDurationHours,
			string(s.DefaultDepositType),
			s.DefaultDepositValue,
		).
		Suffix(`ON CONFLICT (account_id) DO UPDATE SET
			tax_rate_percent = EXCLUDED.tax_rate_percent,
			hold_duration_hours = EXCLUDED.hold_duration_hours,
			default_deposit_type = EXCLUDED.default_deposit_type,
			default_deposit_value = EXCLUDED.default_deposit_value,
			updated_at = NOW()
			RETURNING created_at, updated_at`)
}

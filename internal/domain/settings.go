package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountSettings holds account-level configuration read by the booking core
type AccountSettings struct {
	AccountID           int64
	TaxRatePercent      decimal.Decimal
	HoldDurationHours   int
	DefaultDepositType  DepositType
	DefaultDepositValue decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultAccountSettings returns the settings used when an account has none stored
func DefaultAccountSettings(accountID int64) *AccountSettings {
	return &AccountSettings{
		AccountID:           accountID,
		TaxRatePercent:      decimal.NewFromInt(DefaultTaxRatePercent),
		HoldDurationHours:   DefaultHoldDurationHours,
		DefaultDepositType:  DepositNone,
		DefaultDepositValue: decimal.Zero,
	}
}

// HoldDuration returns the tentative hold length
func (s *AccountSettings) HoldDuration() time.Duration {
	return time.Duration(s.HoldDurationHours) * time.Hour
}

// EffectiveTaxRate returns the rate applied to a booking with the given tax type
func (s *AccountSettings) EffectiveTaxRate(taxType TaxType) decimal.Decimal {
	if taxType == TaxExempt {
		return decimal.Zero
	}
	return s.TaxRatePercent
}

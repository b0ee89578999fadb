package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// UpdateSettingsRequest запрос на обновление настроек аккаунта
type UpdateSettingsRequest struct {
	AccountID           int64
	TaxRatePercent      decimal.Decimal
	HoldDurationHours   int
	DefaultDepositType  string
	DefaultDepositValue decimal.Decimal
}

// SettingsResponse настройки аккаунта
type SettingsResponse struct {
	AccountID           int64   `json:"accountId"`
	TaxRatePercent      string  `json:"taxRatePercent"`
	HoldDurationHours   int     `json:"holdDurationHours"`
	DefaultDepositType  string  `json:"defaultDepositType"`
	DefaultDepositValue string  `json:"defaultDepositValue"`
	UpdatedAt           *string `json:"updatedAt,omitempty"` // nil для настроек по умолчанию
}

// FromDomainSettings конвертирует доменные настройки в ответ
func FromDomainSettings(s *domain.AccountSettings) *SettingsResponse {
	resp := &SettingsResponse{
		AccountID:           s.AccountID,
		TaxRatePercent:      s.TaxRatePercent.String(),
		HoldDurationHours:   s.HoldDurationHours,
		DefaultDepositType:  string(s.DefaultDepositType),
		DefaultDepositValue: s.DefaultDepositValue.StringFixed(2),
	}
	if !s.UpdatedAt.IsZero() {
		formatted := s.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &formatted
	}
	return resp
}

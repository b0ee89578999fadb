package update_settings

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/service/settings/models"
)

// UpdateSettingsRequest HTTP request model
type UpdateSettingsRequest struct {
	TaxRatePercent      decimal.Decimal `json:"taxRatePercent"`
	HoldDurationHours   int             `json:"holdDurationHours"`
	DefaultDepositType  string          `json:"defaultDepositType,omitempty"`
	DefaultDepositValue decimal.Decimal `json:"defaultDepositValue"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSettingsRequest) ToServiceRequest(accountID int64) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		AccountID:           accountID,
		TaxRatePercent:      r.TaxRatePercent,
		HoldDurationHours:   r.HoldDurationHours,
		DefaultDepositType:  r.DefaultDepositType,
		DefaultDepositValue: r.DefaultDepositValue,
	}
}

package quote_deposit

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
)

// DepositQuoteRequest HTTP request model
type DepositQuoteRequest struct {
	TotalValue   decimal.Decimal `json:"totalValue"`
	TaxType      string          `json:"taxType,omitempty"`
	DepositType  string          `json:"depositType,omitempty"`
	DepositValue decimal.Decimal `json:"depositValue"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *DepositQuoteRequest) ToServiceRequest(accountID int64) *models.DepositQuoteRequest {
	return &models.DepositQuoteRequest{
		AccountID:    accountID,
		TotalValue:   r.TotalValue,
		TaxType:      r.TaxType,
		DepositType:  r.DepositType,
		DepositValue: r.DepositValue,
	}
}

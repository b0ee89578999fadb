package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	createBooking "github.com/m04kA/SMC-VenueBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ResourceID    int64            `json:"resourceId"`
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail"`
	Start         time.Time        `json:"start"` // RFC3339
	End           time.Time        `json:"end"`
	Status        string           `json:"status,omitempty"` // tentative | confirmed
	HoldExpiresAt *time.Time       `json:"holdExpiresAt,omitempty"`
	TotalValue    decimal.Decimal  `json:"totalValue"`
	TaxType       string           `json:"taxType,omitempty"`
	DepositType   *string          `json:"depositType,omitempty"`
	DepositValue  *decimal.Decimal `json:"depositValue,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(accountID int64) *createBooking.Request {
	return &createBooking.Request{
		AccountID:     accountID,
		ResourceID:    r.ResourceID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Start:         r.Start,
		End:           r.End,
		Status:        r.Status,
		HoldExpiresAt: r.HoldExpiresAt,
		TotalValue:    r.TotalValue,
		TaxType:       r.TaxType,
		DepositType:   r.DepositType,
		DepositValue:  r.DepositValue,
		Notes:         r.Notes,
	}
}

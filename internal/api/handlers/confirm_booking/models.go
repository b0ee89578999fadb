package confirm_booking

import (
	"github.com/shopspring/decimal"

	confirmBooking "github.com/m04kA/SMC-VenueBooking/internal/usecase/confirm_booking"
)

// ConfirmBookingRequest HTTP request model.
// taxType и depositType обязательны, depositValue можно опустить только для depositType none
type ConfirmBookingRequest struct {
	TaxType      *string          `json:"taxType"`
	DepositType  *string          `json:"depositType"`
	DepositValue *decimal.Decimal `json:"depositValue,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmBookingRequest) ToUseCaseRequest(accountID, bookingID int64) *confirmBooking.Request {
	return &confirmBooking.Request{
		AccountID:    accountID,
		BookingID:    bookingID,
		TaxType:      r.TaxType,
		DepositType:  r.DepositType,
		DepositValue: r.DepositValue,
	}
}

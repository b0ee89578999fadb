package update_booking_status

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
	confirmBooking "github.com/m04kA/SMC-VenueBooking/internal/usecase/confirm_booking"
)

// UpdateStatusRequest HTTP request model.
// Reason используется для cancelled, условия оплаты для confirmed
type UpdateStatusRequest struct {
	Status       string           `json:"status"`
	Reason       string           `json:"reason,omitempty"`
	TaxType      *string          `json:"taxType,omitempty"`
	DepositType  *string          `json:"depositType,omitempty"`
	DepositValue *decimal.Decimal `json:"depositValue,omitempty"`
}

// IsConfirm true, если запрос переводит бронирование в confirmed
func (r *UpdateStatusRequest) IsConfirm() bool {
	return domain.BookingStatus(r.Status) == domain.StatusConfirmed
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(accountID, bookingID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		AccountID: accountID,
		BookingID: bookingID,
		Status:    r.Status,
		Reason:    r.Reason,
	}
}

// ToConfirmRequest конвертирует HTTP запрос в модель use case подтверждения
func (r *UpdateStatusRequest) ToConfirmRequest(accountID, bookingID int64) *confirmBooking.Request {
	return &confirmBooking.Request{
		AccountID:    accountID,
		BookingID:    bookingID,
		TaxType:      r.TaxType,
		DepositType:  r.DepositType,
		DepositValue: r.DepositValue,
	}
}

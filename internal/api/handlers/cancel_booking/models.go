package cancel_booking

import "github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(accountID, bookingID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		AccountID: accountID,
		BookingID: bookingID,
		Reason:    r.Reason,
	}
}

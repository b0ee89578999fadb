package update_booking_status

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
	confirmBooking "github.com/m04kA/SMC-VenueBooking/internal/usecase/confirm_booking"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.BookingResponse, error)
}

type ConfirmBookingUseCase interface {
	Execute(ctx context.Context, req *confirmBooking.Request) (*confirmBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

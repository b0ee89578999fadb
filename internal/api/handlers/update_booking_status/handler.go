package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	confirmHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/confirm_booking"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingAccountID   = "отсутствует ID аккаунта"
	msgNotFound           = "бронирование не найдено"
	msgInvalidStatus      = "некорректный статус"
)

type Handler struct {
	service BookingService
	confirm ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(service BookingService, confirm ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		service: service,
		confirm: confirm,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}/status
// confirmed выполняется через use case подтверждения, completed и cancelled через сервис
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.ParseInt64Param(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	accountID, ok := middleware.GetAccountID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id}/status - Missing account ID")
		handlers.RespondUnauthorized(w, msgMissingAccountID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.IsConfirm() {
		h.handleConfirm(w, r, accountID, bookingID, &req)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), req.ToServiceRequest(accountID, bookingID))
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("PUT /bookings/{id}/status - Rejected: booking_id=%d, status=%s, error=%v",
				bookingID, req.Status, err)
			return
		}

		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrStatusConflict):
			h.logger.Warn("PUT /bookings/{id}/status - Status conflict: booking_id=%d", bookingID)
			handlers.RespondStatusConflict(w)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id}/status - Invalid status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PUT /bookings/{id}/status - Failed to update status: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/status - Status updated: booking_id=%d, status=%s", bookingID, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

func (h *Handler) handleConfirm(w http.ResponseWriter, r *http.Request, accountID, bookingID int64, req *UpdateStatusRequest) {
	result, err := h.confirm.Execute(r.Context(), req.ToConfirmRequest(accountID, bookingID))
	if err != nil {
		if confirmHandler.RespondConfirmError(w, err) {
			h.logger.Warn("PUT /bookings/{id}/status - Confirm rejected: booking_id=%d, error=%v", bookingID, err)
			return
		}
		h.logger.Error("PUT /bookings/{id}/status - Failed to confirm booking: booking_id=%d, error=%v",
			bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /bookings/{id}/status - Booking confirmed: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(result.Booking, result.Now))
}

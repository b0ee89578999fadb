package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-VenueBooking/internal/usecase/create_booking"
)

const (
	msgMissingAccountID   = "отсутствует ID аккаунта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные бронирования"
	msgHoldInPast         = "срок холда должен быть в будущем"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing account ID")
		handlers.RespondUnauthorized(w, msgMissingAccountID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(accountID))
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /bookings - Rejected: account_id=%d, resource_id=%d, error=%v",
				accountID, req.ResourceID, err)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrHoldInPast):
			h.logger.Warn("POST /bookings - Hold in past: account_id=%d", accountID)
			handlers.RespondBadRequest(w, msgHoldInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid data: account_id=%d, error=%v", accountID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: account_id=%d, resource_id=%d, error=%v",
				accountID, req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, account_id=%d, status=%s",
		result.Booking.ID, accountID, result.Booking.Status)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(result.Booking, result.Now))
}

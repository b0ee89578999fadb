package quote_deposit

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings"
)

const (
	msgMissingAccountID   = "отсутствует ID аккаунта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные для расчета"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/deposit-quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r.Context())
	if !ok {
		h.logger.Warn("POST /deposit-quote - Missing account ID")
		handlers.RespondUnauthorized(w, msgMissingAccountID)
		return
	}

	var req DepositQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /deposit-quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	quote, err := h.service.QuoteDeposit(r.Context(), req.ToServiceRequest(accountID))
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /deposit-quote - Rejected: account_id=%d, error=%v", accountID, err)
			return
		}

		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /deposit-quote - Invalid data: account_id=%d, error=%v", accountID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /deposit-quote - Failed to quote deposit: account_id=%d, error=%v", accountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /deposit-quote - Quote calculated: account_id=%d, total=%s", accountID, quote.TotalInclTax)
	handlers.RespondJSON(w, http.StatusOK, quote)
}

package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	confirmBooking "github.com/m04kA/SMC-VenueBooking/internal/usecase/confirm_booking"
)

const (
	msgNotFound     = "бронирование не найдено"
	msgInvalidTerms = "некорректные условия подтверждения"
)

// RespondConfirmError отвечает на клиентские ошибки подтверждения.
// Возвращает false для внутренних ошибок. Используется и в PUT /status
func RespondConfirmError(w http.ResponseWriter, err error) bool {
	if handlers.RespondDomainError(w, err) {
		return true
	}

	switch {
	case errors.Is(err, confirmBooking.ErrBookingNotFound):
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, confirmBooking.ErrStatusConflict):
		handlers.RespondStatusConflict(w)
	case errors.Is(err, confirmBooking.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidTerms)
	default:
		return false
	}
	return true
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Коды ошибок 409
const (
	CodeInvalidTransition = "invalid_transition"
	CodeExpiredHold       = "expired_hold"
	CodeStatusConflict    = "status_conflict"
)

const (
	msgInvalidTransition = "недопустимый переход статуса бронирования"
	msgExpiredHold       = "срок холда бронирования истек"
	msgStatusConflict    = "статус бронирования был изменен параллельно, повторите запрос"
	msgInvalidRange      = "время окончания должно быть позже времени начала"
	msgInvalidDeposit    = "некорректные условия депозита"
	msgInvalidAmount     = "сумма не может быть отрицательной"
	msgUnknownStatus     = "неизвестный статус бронирования"
	msgUnknownTaxType    = "неизвестный тип налогообложения"
)

// RespondDomainError отвечает на ошибки доменного слоя.
// Возвращает false, если ошибка не относится к домену
func RespondDomainError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, domain.ErrExpiredHold):
		RespondConflict(w, CodeExpiredHold, msgExpiredHold)
	case errors.Is(err, domain.ErrInvalidTransition):
		RespondConflict(w, CodeInvalidTransition, msgInvalidTransition)
	case errors.Is(err, domain.ErrInvalidRange):
		RespondBadRequest(w, msgInvalidRange)
	case errors.Is(err, domain.ErrInvalidDepositConfiguration):
		RespondBadRequest(w, msgInvalidDeposit)
	case errors.Is(err, domain.ErrInvalidAmount):
		RespondBadRequest(w, msgInvalidAmount)
	case errors.Is(err, domain.ErrUnknownStatus):
		RespondBadRequest(w, msgUnknownStatus)
	case errors.Is(err, domain.ErrUnknownTaxType):
		RespondBadRequest(w, msgUnknownTaxType)
	default:
		return false
	}
	return true
}

// RespondStatusConflict 409 при проигранной гонке за строку бронирования
func RespondStatusConflict(w http.ResponseWriter) {
	RespondConflict(w, CodeStatusConflict, msgStatusConflict)
}

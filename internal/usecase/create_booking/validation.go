package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
)

// parsedRequest провалидированные и типизированные поля запроса
type parsedRequest struct {
	status       domain.BookingStatus
	taxType      domain.TaxType
	depositType  *domain.DepositType // nil: депозит по умолчанию из настроек
	depositValue decimal.Decimal
}

// validateRequest валидирует входные данные запроса.
// Ошибка диапазона возвращается как domain.InvalidRangeError
func validateRequest(req *Request) (*parsedRequest, error) {
	if req.AccountID <= 0 {
		return nil, fmt.Errorf("%w: accountID must be positive", ErrInvalidInput)
	}
	if req.ResourceID <= 0 {
		return nil, fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxCustomerNameLength {
		return nil, fmt.Errorf("%w: customerName is longer than %d", ErrInvalidInput, domain.MaxCustomerNameLength)
	}
	email := strings.TrimSpace(req.CustomerEmail)
	if email == "" {
		return nil, fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: customerEmail: %v", ErrInvalidInput, err)
	}
	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes are longer than %d", ErrInvalidInput, domain.MaxNotesLength)
	}

	if err := domain.ValidateRange(req.Start, req.End); err != nil {
		return nil, err
	}

	if req.TotalValue.IsNegative() {
		return nil, fmt.Errorf("%w: totalValue must not be negative", ErrInvalidInput)
	}

	parsed := &parsedRequest{
		status:  domain.StatusTentative,
		taxType: domain.TaxStandard,
	}

	if req.Status != "" {
		status, err := domain.ParseBookingStatus(req.Status)
		if err != nil || (status != domain.StatusTentative && status != domain.StatusConfirmed) {
			return nil, fmt.Errorf("%w: initial status must be tentative or confirmed", ErrInvalidInput)
		}
		parsed.status = status
	}
	if parsed.status == domain.StatusConfirmed && req.HoldExpiresAt != nil {
		return nil, fmt.Errorf("%w: holdExpiresAt applies to tentative bookings only", ErrInvalidInput)
	}

	if req.TaxType != "" {
		taxType, err := domain.ParseTaxType(req.TaxType)
		if err != nil {
			return nil, fmt.Errorf("%w: taxType %q", ErrInvalidInput, req.TaxType)
		}
		parsed.taxType = taxType
	}

	switch {
	case req.DepositType != nil:
		depositType, err := domain.ParseDepositType(*req.DepositType)
		if err != nil {
			return nil, err
		}
		parsed.depositType = &depositType
		parsed.depositValue = ptr.Deref(req.DepositValue, decimal.Zero)
	case req.DepositValue != nil:
		return nil, fmt.Errorf("%w: depositValue requires depositType", ErrInvalidInput)
	}

	return parsed, nil
}

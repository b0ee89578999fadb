package confirm_booking

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// parsedTerms провалидированные условия подтверждения из запроса
type parsedTerms struct {
	taxType      domain.TaxType
	depositType  domain.DepositType
	depositValue decimal.Decimal
}

// validateRequest валидирует входные данные запроса.
// taxType и depositType обязательны, depositValue обязателен для fixed и percentage.
// Неизвестный тип депозита возвращается как domain.InvalidDepositConfigurationError
func validateRequest(req *Request) (*parsedTerms, error) {
	if req.AccountID <= 0 {
		return nil, fmt.Errorf("%w: accountID must be positive", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.TaxType == nil || *req.TaxType == "" {
		return nil, fmt.Errorf("%w: taxType is required", ErrInvalidInput)
	}
	taxType, err := domain.ParseTaxType(*req.TaxType)
	if err != nil {
		return nil, fmt.Errorf("%w: taxType %q", ErrInvalidInput, *req.TaxType)
	}

	if req.DepositType == nil || *req.DepositType == "" {
		return nil, fmt.Errorf("%w: depositType is required", ErrInvalidInput)
	}
	depositType, err := domain.ParseDepositType(*req.DepositType)
	if err != nil {
		return nil, err
	}

	terms := &parsedTerms{
		taxType:     taxType,
		depositType: depositType,
	}
	switch {
	case req.DepositValue != nil:
		terms.depositValue = *req.DepositValue
	case depositType != domain.DepositNone:
		return nil, fmt.Errorf("%w: depositValue is required for depositType %q", ErrInvalidInput, depositType)
	}

	return terms, nil
}

// buildTerms дополняет условия из запроса налоговой ставкой аккаунта
func buildTerms(parsed *parsedTerms, settings *domain.AccountSettings) domain.ConfirmTerms {
	return domain.ConfirmTerms{
		TaxType:        parsed.taxType,
		TaxRatePercent: settings.EffectiveTaxRate(parsed.taxType),
		DepositType:    parsed.depositType,
		DepositValue:   parsed.depositValue,
	}
}

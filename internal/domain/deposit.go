package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DepositType selects how the upfront deposit is derived
type DepositType string

const (
	DepositNone       DepositType = "none"
	DepositFixed      DepositType = "fixed"
	DepositPercentage DepositType = "percentage"
)

// ParseDepositType converts a raw string into a DepositType; empty means none
func ParseDepositType(s string) (DepositType, error) {
	switch DepositType(s) {
	case "":
		return DepositNone, nil
	case DepositNone, DepositFixed, DepositPercentage:
		return DepositType(s), nil
	default:
		return "", &InvalidDepositConfigurationError{Type: DepositType(s), Reason: "unknown deposit type"}
	}
}

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// DepositInput is the calculator input
type DepositInput struct {
	TotalValue     decimal.Decimal // tax-exclusive, >= 0
	TaxRatePercent decimal.Decimal // 10 means 10%
	DepositType    DepositType
	DepositValue   decimal.Decimal
}

// PaymentDetails are the monetary figures derived for a confirmed booking
type PaymentDetails struct {
	TaxRatePercent decimal.Decimal
	TotalInclTax   decimal.Decimal
	DepositAmount  decimal.Decimal
	BalanceDue     decimal.Decimal // negative when the deposit exceeds the total
}

// ValidateDeposit checks the deposit value against its type's bounds
func ValidateDeposit(depositType DepositType, value decimal.Decimal) error {
	switch depositType {
	case DepositNone:
		return nil
	case DepositFixed:
		if value.IsNegative() {
			return &InvalidDepositConfigurationError{Type: depositType, Value: value.String(), Reason: "fixed deposit must not be negative"}
		}
		return nil
	case DepositPercentage:
		if value.IsNegative() || value.GreaterThan(hundred) {
			return &InvalidDepositConfigurationError{Type: depositType, Value: value.String(), Reason: "percentage must be within [0,100]"}
		}
		return nil
	default:
		return &InvalidDepositConfigurationError{Type: depositType, Value: value.String(), Reason: "unknown deposit type"}
	}
}

// ValidateDepositInput checks amounts and the deposit configuration
func ValidateDepositInput(in DepositInput) error {
	if in.TotalValue.IsNegative() {
		return fmt.Errorf("%w: totalValue=%s", ErrInvalidAmount, in.TotalValue)
	}
	if in.TaxRatePercent.IsNegative() {
		return fmt.Errorf("%w: taxRatePercent=%s", ErrInvalidAmount, in.TaxRatePercent)
	}
	return ValidateDeposit(in.DepositType, in.DepositValue)
}

// CalculateDeposit derives the tax-inclusive total, deposit and balance.
// Every derived figure is rounded half away from zero to cents before it is used further.
// A percentage outside [0,100] is clamped; callers reject it earlier with ValidateDeposit.
func CalculateDeposit(in DepositInput) PaymentDetails {
	multiplier := decimal.NewFromInt(1).Add(in.TaxRatePercent.Div(hundred))
	totalInclTax := round2(in.TotalValue.Mul(multiplier))

	var deposit decimal.Decimal
	switch in.DepositType {
	case DepositPercentage:
		pct := decimal.Min(decimal.Max(in.DepositValue, decimal.Zero), hundred)
		deposit = round2(totalInclTax.Mul(pct).Div(hundred))
	case DepositFixed:
		deposit = round2(in.DepositValue)
	default:
		deposit = decimal.Zero
	}

	return PaymentDetails{
		TaxRatePercent: in.TaxRatePercent,
		TotalInclTax:   totalInclTax,
		DepositAmount:  deposit,
		BalanceDue:     round2(totalInclTax.Sub(deposit)),
	}
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

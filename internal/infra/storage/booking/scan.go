package booking

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

type nullPayment struct {
	TaxRatePercent decimal.NullDecimal
	TotalInclTax   decimal.NullDecimal
	DepositAmount  decimal.NullDecimal
	BalanceDue     decimal.NullDecimal
}

func paymentColumns(p *domain.PaymentDetails) nullPayment {
	if p == nil {
		return nullPayment{}
	}
	return nullPayment{
		TaxRatePercent: decimal.NewNullDecimal(p.TaxRatePercent),
		TotalInclTax:   decimal.NewNullDecimal(p.TotalInclTax),
		DepositAmount:  decimal.NewNullDecimal(p.DepositAmount),
		BalanceDue:     decimal.NewNullDecimal(p.BalanceDue),
	}
}

func (p nullPayment) details() *domain.PaymentDetails {
	if !p.TotalInclTax.Valid {
		return nil
	}
	return &domain.PaymentDetails{
		TaxRatePercent: p.TaxRatePercent.Decimal,
		TotalInclTax:   p.TotalInclTax.Decimal,
		DepositAmount:  p.DepositAmount.Decimal,
		BalanceDue:     p.BalanceDue.Decimal,
	}
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                    domain.Booking
		payment              nullPayment
		holdExpiresAt        sql.NullTime
		confirmedAt          sql.NullTime
		completedAt          sql.NullTime
		cancelledAt          sql.NullTime
		notes, cancelReason  sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.AccountID,
		&b.ResourceID,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.Start,
		&b.End,
		&b.Status,
		&holdExpiresAt,
		&b.TotalValue,
		&b.TaxType,
		&b.DepositType,
		&b.DepositValue,
		&payment.TaxRatePercent,
		&payment.TotalInclTax,
		&payment.DepositAmount,
		&payment.BalanceDue,
		&notes,
		&cancelReason,
		&confirmedAt,
		&completedAt,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.HoldExpiresAt = nullTime(holdExpiresAt)
	b.ConfirmedAt = nullTime(confirmedAt)
	b.CompletedAt = nullTime(completedAt)
	b.CancelledAt = nullTime(cancelledAt)
	b.Notes = nullString(notes)
	b.CancellationReason = nullString(cancelReason)
	b.Payment = payment.details()
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

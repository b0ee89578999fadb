package booking

import (
	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/psqlbuilder"
)

const tableBookings = "bookings"

var bookingColumns = []string{
	"id",
	"account_id",
	"resource_id",
	"customer_name",
	"customer_email",
	"start_at",
	"end_at",
	"status",
	"hold_expires_at",
	"total_value",
	"tax_type",
	"deposit_type",
	"deposit_value",
	"tax_rate_percent",
	"total_incl_tax",
	"deposit_amount",
	"balance_due",
	"notes",
	"cancellation_reason",
	"confirmed_at",
	"completed_at",
	"cancelled_at",
	"created_at",
	"updated_at",
}

func selectByIDQuery(accountID, id int64, forUpdate bool) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id, "account_id": accountID})

	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}
	return builder
}

// listQuery выбирает бронирования, пересекающиеся с [From, To)
func listQuery(filter domain.BookingsFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"account_id": filter.AccountID})

	if filter.ResourceID != nil {
		builder = builder.Where(squirrel.Eq{"resource_id": *filter.ResourceID})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.Gt{"end_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"start_at": *filter.To})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	return builder.OrderBy("start_at ASC", "id ASC")
}

func insertQuery(b *domain.Booking) squirrel.InsertBuilder {
	payment := paymentColumns(b.Payment)

	return psqlbuilder.Insert(tableBookings).
		Columns(
			"account_id",
			"resource_id",
			"customer_name",
			"customer_email",
			"start_at",
			"end_at",
			"status",
			"hold_expires_at",
			"total_value",
			"tax_type",
			"deposit_type",
			"deposit_value",
			"tax_rate_percent",
			"total_incl_tax",
			"deposit_amount",
			"balance_due",
			"notes",
			"confirmed_at",
		).
		Values(
			b.AccountID,
			b.ResourceID,
			b.CustomerName,
			b.CustomerEmail,
			b.Start,
			b.End,
			string(b.Status),
			b.HoldExpiresAt,
			b.TotalValue,
			string(b.TaxType),
			string(b.DepositType),
			b.DepositValue,
			payment.TaxRatePercent,
			payment.TotalInclTax,
			payment.DepositAmount,
			payment.BalanceDue,
			b.Notes,
			b.ConfirmedAt,
		).
		Suffix("RETURNING id, created_at, updated_at")
}

// updateLifecycleQuery пишет результат перехода только если статус в БД
// все еще равен expected
func updateLifecycleQuery(b *domain.Booking, expected domain.BookingStatus) squirrel.UpdateBuilder {
	payment := paymentColumns(b.Payment)

	return psqlbuilder.Update(tableBookings).
		Set("status", string(b.Status)).
		Set("hold_expires_at", b.HoldExpiresAt).
		Set("tax_type", string(b.TaxType)).
		Set("deposit_type", string(b.DepositType)).
		Set("deposit_value", b.DepositValue).
		Set("tax_rate_percent", payment.TaxRatePercent).
		Set("total_incl_tax", payment.TotalInclTax).
		Set("deposit_amount", payment.DepositAmount).
		Set("balance_due", payment.BalanceDue).
		Set("cancellation_reason", b.CancellationReason).
		Set("confirmed_at", b.ConfirmedAt).
		Set("completed_at", b.CompletedAt).
		Set("cancelled_at", b.CancelledAt).
		Set("updated_at", b.UpdatedAt).
		Where(squirrel.Eq{
			"id":         b.ID,
			"account_id": b.AccountID,
			"status":     string(expected),
		})
}

func existsQuery(accountID, id int64) squirrel.SelectBuilder {
	return psqlbuilder.Select("1").
		From(tableBookings).
		Where(squirrel.Eq{"id": id, "account_id": accountID})
}

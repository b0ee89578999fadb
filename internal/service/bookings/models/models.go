package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Request модели

// ListBookingsRequest запрос списка бронирований аккаунта
type ListBookingsRequest struct {
	AccountID  int64
	Status     *string    // эффективный статус (истекший холд считается отмененным)
	ResourceID *int64     // фильтр по залу
	From       *time.Time // бронирования, заканчивающиеся после From
	To         *time.Time // бронирования, начинающиеся до To
	Query      string     // поиск по имени и email клиента
	Sort       string     // start, end, customerName, totalValue, status, createdAt
	Order      string     // asc, desc
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	AccountID int64
	BookingID int64
	Reason    string
}

// UpdateStatusRequest запрос на перевод бронирования в completed или cancelled
type UpdateStatusRequest struct {
	AccountID int64
	BookingID int64
	Status    string
	Reason    string // только для cancelled
}

// DepositQuoteRequest предварительный расчет депозита с налоговой ставкой аккаунта
type DepositQuoteRequest struct {
	AccountID    int64
	TotalValue   decimal.Decimal
	TaxType      string
	DepositType  string
	DepositValue decimal.Decimal
}

// Response модели

// PaymentResponse суммы, рассчитанные при подтверждении
type PaymentResponse struct {
	TaxRatePercent string `json:"taxRatePercent"`
	TotalInclTax   string `json:"totalInclTax"`
	DepositAmount  string `json:"depositAmount"`
	BalanceDue     string `json:"balanceDue"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                 int64            `json:"id"`
	AccountID          int64            `json:"accountId"`
	ResourceID         int64            `json:"resourceId"`
	CustomerName       string           `json:"customerName"`
	CustomerEmail      string           `json:"customerEmail,omitempty"`
	Start              string           `json:"start"`
	End                string           `json:"end"`
	Status             string           `json:"status"` // эффективный статус
	HoldExpiresAt      *string          `json:"holdExpiresAt,omitempty"`
	HoldExpired        bool             `json:"holdExpired,omitempty"`
	TotalValue         string           `json:"totalValue"`
	TaxType            string           `json:"taxType"`
	DepositType        string           `json:"depositType"`
	DepositValue       string           `json:"depositValue"`
	Payment            *PaymentResponse `json:"payment,omitempty"`
	Notes              *string          `json:"notes,omitempty"`
	CancellationReason *string          `json:"cancellationReason,omitempty"`
	ConfirmedAt        *string          `json:"confirmedAt,omitempty"`
	CompletedAt        *string          `json:"completedAt,omitempty"`
	CancelledAt        *string          `json:"cancelledAt,omitempty"`
	CreatedAt          string           `json:"createdAt"`
	UpdatedAt          string           `json:"updatedAt"`
}

// BookingListResponse список бронирований с количеством по статусам
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
	Counts   map[string]int     `json:"counts"`
}

// DepositQuoteResponse результат расчета депозита
type DepositQuoteResponse struct {
	TaxType        string `json:"taxType"`
	TaxRatePercent string `json:"taxRatePercent"`
	TotalValue     string `json:"totalValue"`
	TotalInclTax   string `json:"totalInclTax"`
	DepositType    string `json:"depositType"`
	DepositAmount  string `json:"depositAmount"`
	BalanceDue     string `json:"balanceDue"`
}

// FromDomainBooking конвертирует доменное бронирование в ответ.
// Статус в ответе эффективный на момент now
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		AccountID:          b.AccountID,
		ResourceID:         b.ResourceID,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		Start:              b.Start.Format(time.RFC3339),
		End:                b.End.Format(time.RFC3339),
		Status:             string(b.EffectiveStatus(now)),
		HoldExpiresAt:      formatTime(b.HoldExpiresAt),
		HoldExpired:        b.IsHoldExpired(now),
		TotalValue:         b.TotalValue.StringFixed(2),
		TaxType:            string(b.TaxType),
		DepositType:        string(b.DepositType),
		DepositValue:       b.DepositValue.String(),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		ConfirmedAt:        formatTime(b.ConfirmedAt),
		CompletedAt:        formatTime(b.CompletedAt),
		CancelledAt:        formatTime(b.CancelledAt),
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}

	if b.Payment != nil {
		resp.Payment = FromDomainPayment(b.Payment)
	}

	return resp
}

func FromDomainPayment(p *domain.PaymentDetails) *PaymentResponse {
	return &PaymentResponse{
		TaxRatePercent: p.TaxRatePercent.String(),
		TotalInclTax:   p.TotalInclTax.StringFixed(2),
		DepositAmount:  p.DepositAmount.StringFixed(2),
		BalanceDue:     p.BalanceDue.StringFixed(2),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

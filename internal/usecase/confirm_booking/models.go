package confirm_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Request запрос на подтверждение бронирования.
// Условия оплаты задаются явно, DepositValue можно опустить только для depositType none
type Request struct {
	AccountID    int64
	BookingID    int64
	TaxType      *string
	DepositType  *string
	DepositValue *decimal.Decimal
}

// Response подтвержденное бронирование с рассчитанным платежом
type Response struct {
	Booking *domain.Booking
	Now     time.Time // момент подтверждения, по нему строится представление
}

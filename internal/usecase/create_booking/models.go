package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	AccountID     int64
	ResourceID    int64
	CustomerName  string
	CustomerEmail string
	Start         time.Time
	End           time.Time
	Status        string     // tentative (по умолчанию) или confirmed
	HoldExpiresAt *time.Time // только для tentative; по умолчанию now + holdDurationHours

	TotalValue   decimal.Decimal // без налога
	TaxType      string          // standard (по умолчанию) или exempt
	DepositType  *string         // по умолчанию из настроек аккаунта
	DepositValue *decimal.Decimal

	Notes *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
	Now     time.Time // момент создания, по нему строится представление
}

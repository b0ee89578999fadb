package domain

// Default account settings
const (
	DefaultTaxRatePercent    = 10
	DefaultHoldDurationHours = 48
)

// Calendar grid defaults
const (
	DefaultWindowStartHour = 6
	DefaultWindowEndHour   = 24
	DefaultSlotMinutes     = 15
	DaysInWeek             = 7
)

// Business validation constants
const (
	MaxTaxRatePercent           = 100
	MaxHoldDurationHours        = 24 * 30
	MaxCustomerNameLength       = 200
	MaxNotesLength              = 1000
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

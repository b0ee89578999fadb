package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrHoldInPast возвращается, когда явно указанный срок холда уже прошел
	ErrHoldInPast = errors.New("create_booking: hold expiry must be in the future")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

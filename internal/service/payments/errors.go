package payments

import "errors"

var (
	// ErrPaymentNotFound is returned when the payment does not exist.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrReservationNotFound is returned when the target reservation does
	// not exist.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied is returned when the caller may not record or read
	// payments.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed payment data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)

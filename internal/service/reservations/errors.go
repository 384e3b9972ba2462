package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied is returned when the caller may not act on the
	// reservation.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the reservation is already cancelled.
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrCannotPromote is returned when promotion is requested on a
	// reservation that is not waitlisted.
	ErrCannotPromote = errors.New("reservation cannot be promoted")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)

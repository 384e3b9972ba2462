package devis

import "errors"

var (
	// ErrDevisNotFound is returned when no quote exists for the
	// reservation. Quote generation is best-effort, so this is a normal
	// state, not a data error.
	ErrDevisNotFound = errors.New("devis not found")

	// ErrReservationNotFound is returned when the reservation does not exist.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied is returned when the caller may not read the quote.
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)

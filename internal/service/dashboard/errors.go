package dashboard

import "errors"

var (
	// ErrAccessDenied is returned when the caller may not read the
	// dashboard.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on a malformed period or report format.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)

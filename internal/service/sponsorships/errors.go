package sponsorships

import "errors"

var (
	// ErrSponsorshipNotFound is returned when the sponsorship does not exist.
	ErrSponsorshipNotFound = errors.New("sponsorship not found")

	// ErrAccessDenied is returned when the caller may not act on the
	// sponsorship.
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadyDecided is returned when approving or rejecting a
	// sponsorship that already left the pending state.
	ErrAlreadyDecided = errors.New("sponsorship already decided")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)

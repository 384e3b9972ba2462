package visioservice

import "errors"

var (
	// ErrInternal is returned on internal client errors.
	ErrInternal = errors.New("visioservice client: internal error")

	// ErrInvalidResponse is returned when the service answers with an
	// unexpected status or a body the client cannot decode.
	ErrInvalidResponse = errors.New("visioservice client: invalid response")

	// ErrServiceDegraded signals graceful degradation: the video-conference
	// service is unreachable and the reservation proceeds without a link.
	ErrServiceDegraded = errors.New("visioservice unavailable: graceful degradation applied")
)

package user

import "errors"

var (
	// ErrUserNotFound is returned when no user matches.
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("user.repository: email already registered")

	// ErrUserReferenced is returned when deleting a user that still has
	// reservations on record.
	ErrUserReferenced = errors.New("user.repository: user has reservations")

	// ErrBuildQuery is returned when building the SQL fails.
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL fails.
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("user.repository: failed to scan row")
)

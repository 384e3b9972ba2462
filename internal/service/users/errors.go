package users

import "errors"

var (
	// ErrUserNotFound is returned when the account does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrAccessDenied is returned when the caller is not an administrator.
	ErrAccessDenied = errors.New("access denied")

	// ErrUserInUse is returned when deleting an account that still has
	// reservations. History is kept for accounting.
	ErrUserInUse = errors.New("user has reservations")

	// ErrInvalidInput is returned on malformed account data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)

package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the email/password pair does
	// not match an account. Deliberately covers both unknown email and
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering with an email already
	// attached to an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidInput is returned on malformed registration data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)

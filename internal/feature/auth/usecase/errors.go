package usecase

import "errors"

var (
	// ErrInvalidInput is returned when email or password is missing.
	ErrInvalidInput = errors.New("email and password are required")

	// ErrUserNotFound is returned when no account matches the email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when signing up with a registered email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid password")
)

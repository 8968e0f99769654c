package usecase

import "errors"

var (
	// ErrInvalidInput is returned for missing or out-of-range request fields.
	ErrInvalidInput = errors.New("invalid input")
)

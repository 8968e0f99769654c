package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the mood is missing.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoQuotes is returned by a remote quote source that found nothing for the mood.
	ErrNoQuotes = errors.New("no quotes found")
)

// ProviderError reports a failed third-party call.
// Payload is the provider's own error body and is relayed to the caller as-is.
type ProviderError struct {
	Provider string
	Status   int
	Payload  any
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: status %d", e.Provider, e.Status)
}

func (e *ProviderError) Unwrap() error { return e.Err }

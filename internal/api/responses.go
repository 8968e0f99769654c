// Package api defines the JSON shapes shared by every HTTP handler.
package api

// ErrorResponse is returned for every failed request.
// Message is always present; Error carries a provider payload when one is relayed.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   any    `json:"error,omitempty"`
}

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// Package api defines the response envelopes shared by every HTTP handler.
package api

// ErrorResponse carries a single client-facing error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a success message for operations with no payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// Violation describes one violated validation rule by field path.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationErrorResponse reports every violated rule of a request at once.
type ValidationErrorResponse struct {
	Error   string      `json:"error"`
	Details []Violation `json:"details"`
}

// NewValidationError wraps the collected violations in the product's
// fixed "Validation failed" envelope.
func NewValidationError(details []Violation) ValidationErrorResponse {
	return ValidationErrorResponse{Error: "Validation failed", Details: details}
}

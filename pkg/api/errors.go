package api

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of an API error.
type ErrorType string

const (
	ErrorTypeAuthentication ErrorType = "authentication_error"
	ErrorTypeInvalidRequest ErrorType = "invalid_request_error"
	ErrorTypeRateLimit      ErrorType = "rate_limit_error"
	ErrorTypeServerError    ErrorType = "server_error"
	ErrorTypeTimeout        ErrorType = "timeout_error"
	ErrorTypeUnknown        ErrorType = "unknown_error"
)

// APIError is the canonical error shape for a failed call. It carries the
// vendor's HTTP status code when one was received (0 for failures that never
// produced a response, such as a missing credential or a network timeout).
type APIError struct {
	Type       ErrorType `json:"type"`
	StatusCode int       `json:"status_code,omitempty"`
	Provider   string    `json:"provider,omitempty"`
	Message    string    `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s: %s (provider: %s)", e.Type, e.Message, e.Provider)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ErrorResponse wraps an APIError for JSON serialization as the top-level error response.
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// NewAuthenticationError creates an APIError for missing or rejected credentials.
func NewAuthenticationError(statusCode int, message string) *APIError {
	return &APIError{
		Type:       ErrorTypeAuthentication,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewInvalidRequestError creates an APIError for malformed input, unknown
// providers or models, and vendor 4xx responses other than auth/rate-limit.
func NewInvalidRequestError(statusCode int, message string) *APIError {
	return &APIError{
		Type:       ErrorTypeInvalidRequest,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewRateLimitError creates an APIError for vendor 429 responses.
func NewRateLimitError(statusCode int, message string) *APIError {
	return &APIError{
		Type:       ErrorTypeRateLimit,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewServerError creates an APIError for vendor 5xx responses and
// non-timeout transport failures.
func NewServerError(statusCode int, message string) *APIError {
	return &APIError{
		Type:       ErrorTypeServerError,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewTimeoutError creates an APIError for calls that produced no response
// within the deadline, including cancelled contexts.
func NewTimeoutError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeTimeout,
		Message: message,
	}
}

// NewUnknownError creates an APIError for vendor responses that fit no
// recognized shape or status.
func NewUnknownError(statusCode int, message string) *APIError {
	return &APIError{
		Type:       ErrorTypeUnknown,
		StatusCode: statusCode,
		Message:    message,
	}
}

// AsAPIError returns the *APIError in err's chain, or nil.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsTimeout reports whether err is a timeout-kind APIError. Callers that
// implement multi-provider fallback treat this one kind as transient; all
// other kinds are terminal for the call.
func IsTimeout(err error) bool {
	apiErr := AsAPIError(err)
	return apiErr != nil && apiErr.Type == ErrorTypeTimeout
}

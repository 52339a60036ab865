package uber

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration validation.
var (
	ErrMissingToken   = errors.New("uber: an access token or server token is required")
	ErrMissingBaseURL = errors.New("uber: base URL is required")
	ErrMissingVersion = errors.New("uber: API version is required")
	ErrInvalidConfig  = errors.New("uber: invalid configuration")
	ErrNilConfig      = errors.New("uber: config cannot be nil")
	ErrNilParams      = errors.New("uber: params cannot be nil")
)

// Sentinel APIError values for use with errors.Is().
// These match on status code only.
var (
	ErrNotFound     = &APIError{StatusCode: 404}
	ErrUnauthorized = &APIError{StatusCode: 401}
	ErrForbidden    = &APIError{StatusCode: 403}
	ErrConflict     = &APIError{StatusCode: 409}
	ErrRateLimited  = &APIError{StatusCode: 429}
)

// APIError represents a non-2xx response from the Uber API. The Code,
// Message, and Fields values come from the standard error body when the
// body is parseable; otherwise only StatusCode is populated.
// It supports error wrapping via Unwrap() and comparison via Is().
type APIError struct {
	StatusCode int               `json:"-"`
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"fields"`
	Err        error             `json:"-"` // Underlying error for wrapping
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		if e.Code != "" {
			return fmt.Sprintf("uber: API error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
		}
		return fmt.Sprintf("uber: API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("uber: API error (status %d)", e.StatusCode)
}

// Unwrap returns the underlying error for error chain support.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements error comparison for errors.Is().
// It matches on status code, allowing comparisons like:
//
//	if errors.Is(err, uber.ErrNotFound) { ... }
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// IsNotFound returns true if the error is a 404 Not Found error.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized returns true if the error is a 401 Unauthorized error.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401
}

// IsForbidden returns true if the error is a 403 Forbidden error.
func (e *APIError) IsForbidden() bool {
	return e.StatusCode == 403
}

// IsRateLimited returns true if the error is a 429 Too Many Requests error.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}

// IsClientError returns true if the error is a 4xx error.
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError returns true if the error is a 5xx server error.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// DecodeError represents a 2xx response whose body could not be decoded
// into the expected result type. It carries the decoding failure and a
// snippet of the offending body for diagnostics.
type DecodeError struct {
	Err  error  // Underlying json decoding error
	Body string // Truncated response body
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("uber: malformed response body: %v", e.Err)
}

// Unwrap returns the underlying decoding error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsAPIError extracts an APIError from the error chain.
// Returns the APIError and true if found, nil and false otherwise.
//
// Example:
//
//	if apiErr, ok := uber.AsAPIError(err); ok {
//	    log.Printf("API error %d: %s", apiErr.StatusCode, apiErr.Message)
//	}
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// AsDecodeError extracts a DecodeError from the error chain.
// Returns the DecodeError and true if found, nil and false otherwise.
func AsDecodeError(err error) (*DecodeError, bool) {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return decErr, true
	}
	return nil, false
}

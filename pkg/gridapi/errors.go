package gridapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-success response from the Grid API. It carries
// the HTTP status code, the machine-readable error code and message from the
// response body, and the raw body for diagnostics when the body did not
// parse.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	RequestID  string `json:"request_id,omitempty"`
	Body       string `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}

	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// errorEnvelope is the wire shape of Grid API error bodies.
type errorEnvelope struct {
	Error APIError `json:"error"`
}

// ParseAPIError builds an APIError from a non-2xx response. If the body is
// not a recognizable error envelope, the raw body is preserved so callers
// still see what the server sent.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Code != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.RequestID = envelope.Error.RequestID
	}

	return apiErr
}

// Common error codes returned by the Grid API.
const (
	ErrorCodeNotFound        = "not_found"
	ErrorCodeUnauthorized    = "unauthorized"
	ErrorCodeForbidden       = "forbidden"
	ErrorCodeInvalidRequest  = "invalid_request"
	ErrorCodeRateLimited     = "rate_limited"
	ErrorCodeInternal        = "internal_error"
)

// Common static errors that can be wrapped with context.
var (
	ErrNoMoreItems         = errors.New("no more items")
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrNilPageFetcher      = errors.New("page fetcher is required")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound || apiErr.Code == ErrorCodeNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.Code == ErrorCodeUnauthorized
	}

	return false
}

// IsForbidden checks if the error is an authorization error.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden || apiErr.Code == ErrorCodeForbidden
	}

	return false
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.Code == ErrorCodeRateLimited
	}

	return false
}

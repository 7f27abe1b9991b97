package fitbit

import (
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the Fitbit API.
type APIError struct {
	StatusCode int
	Body       string
	URL        string
	Err        error // Underlying error, if any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("fitbit api error: %d - %s at %s", e.StatusCode, e.Body, e.URL)
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

// Unwrap implements errors.Unwrap so the underlying error can be extracted.
func (e *APIError) Unwrap() error {
	return e.Err
}

// RateLimitError represents an error indicating that the client is rate-limited.
// It can occur locally before the request is made or as a response from the API.
type RateLimitError struct {
	RetryAfter int // Suggested retry after duration in seconds, if provided by the API
	Err        error
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("fitbit rate limit exceeded: retry after %d seconds", e.RetryAfter)
	}
	if e.Err != nil {
		return fmt.Sprintf("fitbit rate limit exceeded: %v", e.Err)
	}
	return "fitbit rate limit exceeded"
}

// Unwrap implements errors.Unwrap.
func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// AuthError represents an authentication or authorization failure (401, 403).
type AuthError struct {
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	msg := fmt.Sprintf("fitbit auth error (%d): %s", e.StatusCode, e.Message)
	if e.Err != nil {
		msg += fmt.Sprintf(" - %v", e.Err)
	}
	return msg
}

// Unwrap implements errors.Unwrap.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// DeleteError represents a broken deletion contract: a DELETE call that
// returned anything other than 204, or a 204 arriving on a non-DELETE
// call. The API reserves empty-success for deletions, so both directions
// of the mismatch are errors.
type DeleteError struct {
	StatusCode int
	Method     string
	Body       string
	URL        string
}

// Error implements the error interface.
func (e *DeleteError) Error() string {
	if e.Method == http.MethodDelete {
		return fmt.Sprintf("fitbit delete failed: %d at %s - %s", e.StatusCode, e.URL, e.Body)
	}
	return fmt.Sprintf("fitbit: unexpected 204 No Content on %s %s", e.Method, e.URL)
}

// InvalidArgumentsError reports a call whose arguments cannot form a
// valid request. It is returned before any network traffic happens.
type InvalidArgumentsError struct {
	Message string
}

// Error implements the error interface.
func (e *InvalidArgumentsError) Error() string {
	return "fitbit: invalid arguments: " + e.Message
}

// InvalidPeriodError reports a time-series period outside the fixed set
// the API accepts. It is returned before any network traffic happens.
type InvalidPeriodError struct {
	Period Period
}

// Error implements the error interface.
func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("fitbit: invalid period %q (valid: 1d, 7d, 30d, 1w, 1m, 3m, 6m, 1y, max)", string(e.Period))
}

// mapStatusError is a helper to convert an unsuccessful status code and
// body to an appropriate custom error.
func mapStatusError(statusCode int, body, requestURL string) error {
	baseErr := &APIError{
		StatusCode: statusCode,
		Body:       body,
		URL:        requestURL,
	}

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{
			StatusCode: statusCode,
			Message:    "authentication failed or forbidden",
			Err:        baseErr,
		}
	case http.StatusTooManyRequests:
		return &RateLimitError{
			Err: baseErr,
		}
	default:
		return baseErr
	}
}

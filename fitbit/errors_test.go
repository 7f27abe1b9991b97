package fitbit

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{
		StatusCode: 500,
		Body:       "internal failure",
		URL:        "https://api.fitbit.com/1/user/-/body/date/2024-03-01.json",
	}

	got := err.Error()
	if !strings.Contains(got, "500") {
		t.Errorf("expected error to contain status code 500, got: %s", got)
	}
	if !strings.Contains(got, "internal failure") {
		t.Errorf("expected error to contain body, got: %s", got)
	}
	if !strings.Contains(got, "api.fitbit.com") {
		t.Errorf("expected error to contain URL, got: %s", got)
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("original error")
	err := &APIError{Err: inner}

	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to find inner error")
	}
}

func TestAuthError_Unwrap(t *testing.T) {
	base := &APIError{StatusCode: 401}
	err := &AuthError{StatusCode: 401, Err: base}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Error("expected errors.As to find wrapped APIError")
	}
}

func TestDeleteError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      DeleteError
		contains string
	}{
		{
			name: "failed delete",
			err: DeleteError{
				StatusCode: 205,
				Method:     http.MethodDelete,
				URL:        "https://api.fitbit.com/1/user/-/foods/log/water/1.json",
				Body:       "1",
			},
			contains: "delete failed: 205",
		},
		{
			name: "stray 204",
			err: DeleteError{
				StatusCode: 204,
				Method:     http.MethodGet,
				URL:        "https://api.fitbit.com/1/user/-/body/date/2024-03-01.json",
			},
			contains: "unexpected 204",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); !strings.Contains(got, tc.contains) {
				t.Errorf("expected %q in error, got: %s", tc.contains, got)
			}
		})
	}
}

func TestInvalidPeriodError_Error(t *testing.T) {
	err := &InvalidPeriodError{Period: "xyz"}
	if got := err.Error(); !strings.Contains(got, `"xyz"`) {
		t.Errorf("expected error to name the bad period, got: %s", got)
	}
}

func TestInvalidArgumentsError_Error(t *testing.T) {
	err := &InvalidArgumentsError{Message: "period and end date are mutually exclusive"}
	if got := err.Error(); !strings.Contains(got, "mutually exclusive") {
		t.Errorf("expected error to carry the message, got: %s", got)
	}
}

func TestMapStatusError(t *testing.T) {
	tests := []struct {
		status int
		verify func(error) bool
	}{
		{http.StatusUnauthorized, func(err error) bool { var e *AuthError; return errors.As(err, &e) }},
		{http.StatusForbidden, func(err error) bool { var e *AuthError; return errors.As(err, &e) }},
		{http.StatusTooManyRequests, func(err error) bool { var e *RateLimitError; return errors.As(err, &e) }},
		{http.StatusBadRequest, func(err error) bool { var e *APIError; return errors.As(err, &e) }},
		{http.StatusInternalServerError, func(err error) bool { var e *APIError; return errors.As(err, &e) }},
	}

	for _, tc := range tests {
		err := mapStatusError(tc.status, "body", "https://api.fitbit.com/x")
		if !tc.verify(err) {
			t.Errorf("status %d mapped to wrong type: %T", tc.status, err)
		}
	}
}

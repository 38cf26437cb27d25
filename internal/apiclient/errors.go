package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var ErrAuthExpired = errors.New("authentication expired")

// NetworkError means no response was received: the server was unreachable,
// the request timed out or the caller gave up.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is any non-2xx response that is not handled by a refresh.
type HTTPError struct {
	Status  int
	Payload []byte
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.Status, http.StatusText(e.Status))
}

// Decode unmarshals the error payload into v.
func (e *HTTPError) Decode(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// AuthExpiredError ends a request whose credentials could not be renewed.
// The stored session has already been cleared when it is returned from a
// failed refresh.
type AuthExpiredError struct {
	Cause error
}

func (e *AuthExpiredError) Error() string {
	if e.Cause == nil {
		return ErrAuthExpired.Error()
	}
	return fmt.Sprintf("%s: %v", ErrAuthExpired, e.Cause)
}

func (e *AuthExpiredError) Unwrap() error { return e.Cause }

func (e *AuthExpiredError) Is(target error) bool { return target == ErrAuthExpired }

func newHTTPError(status int, payload []byte) *HTTPError {
	return &HTTPError{
		Status:  status,
		Payload: payload,
		Message: errorMessage(payload),
	}
}

// errorMessage pulls a human readable message out of the usual error
// envelopes. DRF validation errors ({"field": ["msg"]}) are flattened.
func errorMessage(payload []byte) string {
	var body map[string]any
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}

	for _, key := range []string{"error", "detail", "message"} {
		if s, ok := body[key].(string); ok && s != "" {
			return s
		}
	}

	var parts []string
	for field, v := range body {
		list, ok := v.([]any)
		if !ok {
			continue
		}
		for _, item := range list {
			if s, ok := item.(string); ok {
				if field == "non_field_errors" {
					parts = append(parts, s)
				} else {
					parts = append(parts, field+": "+s)
				}
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

package fyers

import "fmt"

// TransportError is returned when the HTTP status indicates failure before
// the body can be interpreted. It carries the raw response text so callers
// can inspect whatever the server sent.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fyers: HTTP %d: %s", e.StatusCode, e.Body)
}

// DecodeError is returned when a 2xx response body is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("fyers: invalid JSON in response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// APIError is returned when the response decodes but its status indicator
// (the "s" or "status" field) does not signal success. Body holds the full
// decoded envelope for caller inspection.
type APIError struct {
	Body Envelope
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fyers: API error: %v", map[string]any(e.Body))
}

// AuthError is returned when a token exchange succeeds at the HTTP level but
// no usable token is present in the response.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "fyers: " + e.Reason
}

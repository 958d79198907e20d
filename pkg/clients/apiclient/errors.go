package apiclient

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSessionExpired is returned for any HTTP 401, regardless of body content
var ErrSessionExpired = errors.New("session expired - please sign in again")

// FieldError is a single field-level validation error from the API.
// The API uses "param" or "path" interchangeably for the field name.
type FieldError struct {
	Param string `json:"param"`
	Path  string `json:"path"`
	Msg   string `json:"msg"`
}

// Field returns the field name the error refers to
func (f FieldError) Field() string {
	if f.Param != "" {
		return f.Param
	}
	return f.Path
}

// APIError is a non-2xx response the server produced deliberately
// (validation rejection, business-rule rejection, etc.)
type APIError struct {
	Status      int
	Message     string
	FieldErrors []FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.BestMessage())
}

// BestMessage picks the most useful human-readable message: joined
// field-level errors first, then the top-level message, then a generic
// fallback.
func (e *APIError) BestMessage() string {
	if len(e.FieldErrors) > 0 {
		msgs := make([]string, 0, len(e.FieldErrors))
		for _, fe := range e.FieldErrors {
			if fe.Msg != "" {
				msgs = append(msgs, fe.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	if e.Message != "" {
		return e.Message
	}
	return "something went wrong, please try again"
}

// ConnectivityError wraps a transport-level failure (DNS, refused
// connection, timeout). It is never surfaced raw to the user.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

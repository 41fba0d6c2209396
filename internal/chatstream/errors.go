package chatstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrBusy is returned by Submit while a previous request is still running.
var ErrBusy = errors.New("chat request already in progress")

// ErrClosed is returned by Submit after the session has been closed.
var ErrClosed = errors.New("chat session closed")

// ErrorKind classifies a non-2xx relay response.
type ErrorKind string

const (
	KindRateLimited     ErrorKind = "rate_limited"
	KindPaymentRequired ErrorKind = "payment_required"
	KindFailed          ErrorKind = "failed"
)

// Fallback messages used when the relay does not supply one.
const (
	fallbackRateLimited     = "Rate limit exceeded. Please try again later."
	fallbackPaymentRequired = "Payment required. Please add credits."
	fallbackFailed          = "Failed to get response"
)

// StatusError is a non-2xx response from the chat relay.
type StatusError struct {
	StatusCode int
	Kind       ErrorKind
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("chat relay returned %d: %s", e.StatusCode, e.Message)
}

// newStatusError classifies status and extracts a message from body, which
// may be empty or not JSON at all.
func newStatusError(status int, body []byte) *StatusError {
	var parsed struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &parsed)

	e := &StatusError{StatusCode: status, Message: parsed.Error}
	switch status {
	case http.StatusTooManyRequests:
		e.Kind = KindRateLimited
		if e.Message == "" {
			e.Message = fallbackRateLimited
		}
	case http.StatusPaymentRequired:
		e.Kind = KindPaymentRequired
		if e.Message == "" {
			e.Message = fallbackPaymentRequired
		}
	default:
		e.Kind = KindFailed
		if e.Message == "" {
			e.Message = fallbackFailed
		}
	}
	return e
}

// userMessage returns the text shown to the user for err.
func userMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallbackFailed
}

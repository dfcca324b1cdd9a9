package crawl

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// ErrorType categorises a crawl failure for API error payloads.
type ErrorType string

const (
	ErrTimeout    ErrorType = "TIMEOUT_ERROR"
	ErrNavigation ErrorType = "NAVIGATION_ERROR"
	ErrNetwork    ErrorType = "NETWORK_ERROR"
	ErrExtractor  ErrorType = "EXTRACTOR_ERROR"
	ErrUnknown    ErrorType = "UNKNOWN_ERROR"
)

// Error is a categorised crawl failure.
type Error struct {
	Type    ErrorType
	Context string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// RetryableError indicates a transient upstream failure that can be retried.
// Err holds the transport error behind it, if any.
type RetryableError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RetryableError) Error() string {
	if e.StatusCode == 0 {
		return "retryable error: " + e.Message
	}
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, e.Message)
}

func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable checks if an error is worth retrying. A cancelled context
// never is.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var retryErr *RetryableError
	return errors.As(err, &retryErr)
}

// Classify maps an error to its category.
func Classify(err error) ErrorType {
	var ce *Error
	if errors.As(err, &ce) && ce.Type != "" {
		return ce.Type
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return ErrNetwork
	}
	return ErrUnknown
}

func wrap(typ ErrorType, context string, err error) *Error {
	return &Error{Type: typ, Context: context, Err: err}
}

package adapter

import (
	"errors"
	"fmt"
)

// DefaultErrorLabel is used when a request is issued without its own label.
const DefaultErrorLabel = "Something went wrong"

var (
	// ErrRequestFailed matches every [*RequestFailedError].
	ErrRequestFailed = errors.New("request failed")
	// ErrParseFailed matches every [*ParseFailedError].
	ErrParseFailed = errors.New("parse failed")
	// ErrAPIError is returned when the API answers 2xx with an error body.
	ErrAPIError = errors.New("api error")
	// ErrInvalidBaseURL is returned by the constructor for unusable addresses.
	ErrInvalidBaseURL = errors.New("invalid base url")
)

// RequestFailedError reports a response with a non-success status code.
type RequestFailedError struct {
	Label      string
	StatusCode int
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("%s (%d)", e.Label, e.StatusCode)
}

func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

// ParseFailedError reports a response body that could not be decoded.
type ParseFailedError struct {
	Label string
	Err   error
}

func (e *ParseFailedError) Error() string {
	return fmt.Sprintf("%s: invalid JSON: %v", e.Label, e.Err)
}

func (e *ParseFailedError) Is(target error) bool {
	return target == ErrParseFailed
}

func (e *ParseFailedError) Unwrap() error {
	return e.Err
}

// StatusCode extracts the HTTP status from err if it wraps a
// [*RequestFailedError].
func StatusCode(err error) (int, bool) {
	var reqErr *RequestFailedError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode, true
	}
	return 0, false
}

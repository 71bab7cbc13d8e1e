package service

import "errors"

var (
	ErrRateLimited = errors.New("rate limited")
	ErrConfig      = errors.New("configuration")
	ErrUpstream    = errors.New("upstream failure")
)

// ValidationError is a client-caused rejection whose message is safe to
// surface verbatim. Every other error kind maps to an opaque message at the
// transport boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrFetchInProgress       = errors.New("a standings request is already in flight")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrMalformedResponse     = errors.New("malformed provider response")
)

// FetchError is a non-200 answer from the football provider. It is surfaced as-is and never retried.
type FetchError struct {
	StatusCode int
	Reason     string
}

func (e *FetchError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch data: %d %s", e.StatusCode, reason)
}

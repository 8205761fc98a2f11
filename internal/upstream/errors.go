package upstream

import (
	"errors"
	"fmt"
)

// Kind categorizes a failed fetch against the upstream fund-data provider.
type Kind string

const (
	// KindUnavailable indicates a network failure, timeout, or upstream
	// server error. The data may exist but could not be retrieved now.
	KindUnavailable Kind = "unavailable"
	// KindNotFound indicates the provider does not know the fund code.
	KindNotFound Kind = "not_found"
	// KindParseError indicates the provider answered but the payload was
	// malformed or failed validation.
	KindParseError Kind = "parse_error"
)

// FetchError is a structured error from a single upstream fetch.
//
// The client performs no retries; callers decide what a given Kind means
// for the overall aggregation.
type FetchError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream %s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream %s: %s", e.Kind, e.Message)
}

// Unwrap supports errors.Is and errors.As chains.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewUnavailableError marks a fetch that failed at the transport level or
// with an upstream server error.
func NewUnavailableError(message string, cause error) *FetchError {
	return &FetchError{Kind: KindUnavailable, Message: message, Cause: cause}
}

// NewNotFoundError marks a fund code the provider does not recognize.
func NewNotFoundError(code string) *FetchError {
	return &FetchError{Kind: KindNotFound, StatusCode: 404, Message: "unknown fund code " + code}
}

// NewParseError marks a payload that could not be decoded or validated.
func NewParseError(message string, cause error) *FetchError {
	return &FetchError{Kind: KindParseError, Message: message, Cause: cause}
}

// KindOf extracts the Kind of err, or "" when err is not a FetchError.
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// IsNotFound reports whether err is a FetchError with KindNotFound.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

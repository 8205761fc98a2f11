package service

import "fmt"

// ValidationKind categorizes request validation failures. These are caller
// mistakes, surfaced as 4xx responses and never retried.
type ValidationKind string

const (
	// ValidationBadCode marks a fund code that is not exactly 6 ASCII digits.
	ValidationBadCode ValidationKind = "bad_code"
	// ValidationTooManyItems marks a batch exceeding the configured cap.
	ValidationTooManyItems ValidationKind = "too_many_items"
	// ValidationEmptyBatch marks a batch request without any codes.
	ValidationEmptyBatch ValidationKind = "empty_batch"
)

// ValidationError rejects a request before any upstream fetch is attempted.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AggregationKind categorizes a per-fund aggregation failure.
type AggregationKind string

const (
	// AggregationNotFound means the failures indicate an unknown fund code.
	AggregationNotFound AggregationKind = "not_found"
	// AggregationUnavailable means the provider could not serve any of the
	// fund's sub-fetches right now.
	AggregationUnavailable AggregationKind = "unavailable"
)

// AggregationError is returned by the aggregator only when every sub-fetch
// for a code failed. Partial failures degrade to absent fields instead.
type AggregationError struct {
	Kind  AggregationKind
	Code  string
	Cause error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("fund %s: %s", e.Code, e.Kind)
}

func (e *AggregationError) Unwrap() error {
	return e.Cause
}

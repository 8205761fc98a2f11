package dto

import "time"

// ErrorResponse is the standardized JSON error payload returned by every
// endpoint on failure.
//
// Fields:
//   - Message: human-readable description of what went wrong.
//   - ErrorDetails: optional underlying error text (omitted when empty).
//   - Timestamp: when the error response was built.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid fund code"`
	ErrorDetails string    `json:"error,omitempty" example:"code must be 6 digits"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel as a
// plain error value through middleware.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

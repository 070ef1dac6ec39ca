package domain

import "errors"

var (
	// Common adapter errors
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrMalformedResponse = errors.New("malformed gateway response")

	// ErrRestrictedCard is local policy, not a processor verdict: the card is
	// rejected before any request is sent, so no raw record accompanies it.
	// Whether this list should be processor-reported instead is a pending
	// product decision.
	ErrRestrictedCard = errors.New("usage of this card has been restricted due to its undocumented behavior")
)

// FailureKind separates business declines from request-level errors.
type FailureKind string

const (
	FailureDeclined FailureKind = "declined" // processor ran the request and declined it
	FailureError    FailureKind = "error"    // processor flagged the request as invalid
)

// GatewayError is a non-approved verdict returned by the processor. Original
// always holds the untouched wire record so callers can inspect
// processor-specific diagnostics even on failure.
type GatewayError struct {
	Kind     FailureKind
	Message  string
	Original map[string]string
}

func (e *GatewayError) Error() string { return e.Message }

package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for the error taxonomy described in the system design.
// The transport layer maps these to HTTP status with errors.Is/errors.As,
// never by matching error strings.
var (
	// ErrMalformedRequest indicates a non-JSON body or a missing top-level
	// nurses/patients array.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrSolverUnavailable indicates the MILP backend failed to initialize.
	ErrSolverUnavailable = errors.New("solver unavailable")

	// ErrNoFeasibleSolution indicates both the solver and the greedy
	// fallback produced zero assignments.
	ErrNoFeasibleSolution = errors.New("no feasible solution")
)

// ValidationError carries every §4.1 feasibility/structural message
// produced by Validate. Implementations must return every message found,
// never just the first.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError builds a *ValidationError from one or more messages.
// Returns nil if messages is empty, so callers can write
// `if err := NewValidationError(msgs); err != nil { ... }`.
func NewValidationError(messages []string) *ValidationError {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}

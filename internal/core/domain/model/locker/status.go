package locker

import (
	"fmt"

	"bloqnet/internal/pkg/errs"
)

// Status represents the door state of a locker.
//
// The two states form a trivial state machine:
//
//	OPEN <──> CLOSED
//
// Transitions are idempotent-rejecting: opening an already open locker (or
// closing a closed one) is a conflict, not a no-op.
//
// Status is string-backed so records marshal to the wire values directly.
type Status string

const (
	// StatusOpen means the locker door is open.
	StatusOpen Status = "OPEN"

	// StatusClosed means the locker door is closed.
	StatusClosed Status = "CLOSED"
)

// Validate checks that the status is one of the known door states.
func (s Status) Validate() error {
	switch s {
	case StatusOpen, StatusClosed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid locker status", string(s)))
	}
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// Open transitions the door state to OPEN.
// Returns a conflict error if the locker is already open.
func (s Status) Open() (Status, error) {
	if s == StatusOpen {
		return "", errs.NewConflictError("locker is already OPEN")
	}
	return StatusOpen, nil
}

// Close transitions the door state to CLOSED.
// Returns a conflict error if the locker is already closed.
func (s Status) Close() (Status, error) {
	if s == StatusClosed {
		return "", errs.NewConflictError("locker is already CLOSED")
	}
	return StatusClosed, nil
}

package rent

import (
	"fmt"

	"bloqnet/internal/pkg/errs"
)

// Status represents the lifecycle state of a rent.
// It implements a strictly forward state machine — no regression, no
// skipping:
//
//	CREATED ──> WAITING_DROPOFF ──> WAITING_PICKUP ──> DELIVERED
//	  (send)        (dropoff)          (pickup)
//
// Each transition method validates the current state and returns the next
// state, or a conflict error when the precondition does not hold. DELIVERED
// is final.
//
// Status is string-backed so records marshal to the wire values directly.
type Status string

const (
	// StatusCreated is the initial state of every rent. The rent has no
	// locker assigned yet.
	StatusCreated Status = "CREATED"

	// StatusWaitingDropoff means the rent has been sent to a locker and
	// awaits physical dropoff.
	StatusWaitingDropoff Status = "WAITING_DROPOFF"

	// StatusWaitingPickup means the parcel is inside the locker and awaits
	// pickup by the recipient.
	StatusWaitingPickup Status = "WAITING_PICKUP"

	// StatusDelivered is the final state; the parcel has left the locker.
	StatusDelivered Status = "DELIVERED"
)

// Validate checks that the status is one of the known lifecycle states.
func (s Status) Validate() error {
	switch s {
	case StatusCreated, StatusWaitingDropoff, StatusWaitingPickup, StatusDelivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid rent status", string(s)))
	}
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsInTransit reports whether the rent currently holds a locker slot.
// A locker's isOccupied flag should be true iff an in-transit rent
// references it.
func (s Status) IsInTransit() bool {
	return s == StatusWaitingDropoff || s == StatusWaitingPickup
}

// Send transitions CREATED -> WAITING_DROPOFF.
// Any other current state is a conflict.
func (s Status) Send() (Status, error) {
	if s != StatusCreated {
		return "", errs.NewConflictError(
			fmt.Sprintf("rent status is %s, not %s; cannot send it", s, StatusCreated))
	}
	return StatusWaitingDropoff, nil
}

// Dropoff transitions WAITING_DROPOFF -> WAITING_PICKUP.
// Any other current state is a conflict.
func (s Status) Dropoff() (Status, error) {
	if s != StatusWaitingDropoff {
		return "", errs.NewConflictError(
			fmt.Sprintf("rent status is %s, not %s; cannot drop it off", s, StatusWaitingDropoff))
	}
	return StatusWaitingPickup, nil
}

// Pickup transitions WAITING_PICKUP -> DELIVERED.
// Any other current state is a conflict.
func (s Status) Pickup() (Status, error) {
	if s != StatusWaitingPickup {
		return "", errs.NewConflictError(
			fmt.Sprintf("rent status is %s, not %s; cannot pick it up", s, StatusWaitingPickup))
	}
	return StatusDelivered, nil
}

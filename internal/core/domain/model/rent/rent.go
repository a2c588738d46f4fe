// Package rent defines the Rent record and its delivery lifecycle.
//
// A rent is a parcel-delivery order tracked through a locker. Its status
// moves strictly forward (CREATED -> WAITING_DROPOFF -> WAITING_PICKUP ->
// DELIVERED) and its lockerId is assigned exactly once, by the send
// transition. The transitions that touch locker occupancy (send, pickup)
// are coordinated by the rent manager; this package owns the rent-side
// preconditions and mutations.
package rent

import (
	"math"

	"bloqnet/internal/core/domain/model/kernel"
	"bloqnet/internal/pkg/errs"
)

// Rent is a flat record describing a parcel-delivery order.
// LockerID is nil until the rent is sent to a locker.
type Rent struct {
	ID       kernel.UUID  `json:"id"`
	LockerID *kernel.UUID `json:"lockerId"`
	Weight   float64      `json:"weight"`
	Size     Size         `json:"size"`
	Status   Status       `json:"status"`
}

// New creates a Rent in CREATED status with no locker assigned and a fresh
// system-generated identifier. Weight must be non-negative and size must be
// a known size class; clients may never choose id, lockerId, or status.
func New(weight float64, size Size) (Rent, error) {
	if weight < 0 {
		return Rent{}, errs.NewValueIsOutOfRangeError("weight", weight, 0, math.MaxFloat64)
	}
	if err := size.Validate(); err != nil {
		return Rent{}, err
	}

	return Rent{
		ID:       kernel.NewUUID(),
		LockerID: nil,
		Weight:   weight,
		Size:     size,
		Status:   StatusCreated,
	}, nil
}

// RecordID returns the record's unique identifier for the record store.
func (r Rent) RecordID() kernel.UUID {
	return r.ID
}

// Send assigns the rent to a locker and advances it to WAITING_DROPOFF.
//
// A rent that is not in CREATED status is a conflict. A CREATED rent that
// already carries a locker assignment should be impossible: lockerId is only
// nil while status is CREATED, so an observed violation is a data-integrity
// fault, not a client error.
func (r *Rent) Send(lockerID kernel.UUID) error {
	newStatus, err := r.Status.Send()
	if err != nil {
		return err
	}

	if r.LockerID != nil {
		return errs.NewIntegrityFaultError("rent already has a locker assigned; cannot send it")
	}

	r.Status = newStatus
	r.LockerID = &lockerID
	return nil
}

// Dropoff advances the rent to WAITING_PICKUP.
//
// The rent must be in WAITING_DROPOFF status and the provided locker must be
// the one the rent was sent to; dropping off at any other locker is a
// conflict. Door state is the caller's concern.
func (r *Rent) Dropoff(lockerID kernel.UUID) error {
	newStatus, err := r.Status.Dropoff()
	if err != nil {
		return err
	}

	if err := r.ensureAssignedTo(lockerID); err != nil {
		return err
	}

	r.Status = newStatus
	return nil
}

// Pickup advances the rent to DELIVERED.
//
// The rent must be in WAITING_PICKUP status and the provided locker must be
// the one holding the parcel. Door state and occupancy are the caller's
// concern.
func (r *Rent) Pickup(lockerID kernel.UUID) error {
	newStatus, err := r.Status.Pickup()
	if err != nil {
		return err
	}

	if err := r.ensureAssignedTo(lockerID); err != nil {
		return err
	}

	r.Status = newStatus
	return nil
}

func (r *Rent) ensureAssignedTo(lockerID kernel.UUID) error {
	if r.LockerID == nil || !r.LockerID.IsEqual(lockerID) {
		return errs.NewConflictError("rent lockerId does not match the provided locker id")
	}
	return nil
}

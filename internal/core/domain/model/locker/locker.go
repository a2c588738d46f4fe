// Package locker defines the Locker record and its door-state machine.
//
// A locker has two independent pieces of mutable state: the door status
// (OPEN/CLOSED, driven by the open/close operations) and the occupancy flag
// (driven by the rent lifecycle, never by the door). A locker's isOccupied
// is true iff a rent referencing it is in WAITING_DROPOFF or WAITING_PICKUP;
// that invariant is maintained by the rent transitions, not checked here.
package locker

import (
	"bloqnet/internal/core/domain/model/kernel"
	"bloqnet/internal/pkg/errs"
)

// Locker is a flat record describing a compartment within a bloq.
type Locker struct {
	ID         kernel.UUID `json:"id"`
	BloqID     kernel.UUID `json:"bloqId"`
	Status     Status      `json:"status"`
	IsOccupied bool        `json:"isOccupied"`
}

// New creates a Locker with a fresh system-generated identifier.
// The referenced bloq's existence is the manager's concern; the constructor
// only guards the door status value.
func New(bloqID kernel.UUID, status Status, isOccupied bool) (Locker, error) {
	if err := bloqID.Validate(); err != nil {
		return Locker{}, err
	}
	if err := status.Validate(); err != nil {
		return Locker{}, err
	}

	return Locker{
		ID:         kernel.NewUUID(),
		BloqID:     bloqID,
		Status:     status,
		IsOccupied: isOccupied,
	}, nil
}

// RecordID returns the record's unique identifier for the record store.
func (l Locker) RecordID() kernel.UUID {
	return l.ID
}

// Open opens the locker door.
// Returns a conflict error if the locker is already open.
func (l *Locker) Open() error {
	newStatus, err := l.Status.Open()
	if err != nil {
		return err
	}

	l.Status = newStatus
	return nil
}

// Close closes the locker door.
// Returns a conflict error if the locker is already closed.
func (l *Locker) Close() error {
	newStatus, err := l.Status.Close()
	if err != nil {
		return err
	}

	l.Status = newStatus
	return nil
}

// EnsureOpen reports a conflict unless the door is currently open.
// Dropoff and pickup require an open door but never move it themselves.
func (l *Locker) EnsureOpen() error {
	if l.Status != StatusOpen {
		return errs.NewConflictError("locker is not open")
	}
	return nil
}

// Occupy marks the locker as holding a parcel.
// Returns a conflict error if it is already occupied.
func (l *Locker) Occupy() error {
	if l.IsOccupied {
		return errs.NewConflictError("locker is occupied")
	}

	l.IsOccupied = true
	return nil
}

// Release marks the locker as free.
// Returns a conflict error if it is not currently occupied.
func (l *Locker) Release() error {
	if !l.IsOccupied {
		return errs.NewConflictError("locker is not occupied")
	}

	l.IsOccupied = false
	return nil
}

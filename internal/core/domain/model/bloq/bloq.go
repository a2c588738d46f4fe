// Package bloq defines the Bloq record: a physical site containing lockers.
package bloq

import (
	"bloqnet/internal/core/domain/model/kernel"
)

// Bloq is a flat record describing a physical location in the network.
// It carries no foreign keys; lockers reference it through their bloqId.
// Deleting a bloq cascades to its lockers and their rents (owned by the
// bloq manager, not the record itself).
type Bloq struct {
	ID      kernel.UUID `json:"id"`
	Title   string      `json:"title"`
	Address string      `json:"address"`
}

// New creates a Bloq with a fresh system-generated identifier.
// Clients may never choose the id; payload shape is enforced by the
// manager's schema before this constructor runs.
func New(title, address string) Bloq {
	return Bloq{
		ID:      kernel.NewUUID(),
		Title:   title,
		Address: address,
	}
}

// RecordID returns the record's unique identifier for the record store.
func (b Bloq) RecordID() kernel.UUID {
	return b.ID
}

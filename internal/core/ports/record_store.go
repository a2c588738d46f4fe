// Package ports defines the contracts between the entity managers and the
// infrastructure adapters.
package ports

import (
	"context"

	"bloqnet/internal/core/domain/model/kernel"
)

// Table names of the record store. One table instance exists per entity.
const (
	TableBloqs   = "bloqs"
	TableLockers = "lockers"
	TableRents   = "rents"
)

// Record is any flat document the record store can hold. Every record
// carries a unique, immutable identifier assigned at construction time.
type Record interface {
	RecordID() kernel.UUID
}

// Predicate is a filter function over a record. Managers express all
// queries as predicates; the store evaluates them against a full table
// scan in storage order.
type Predicate[R Record] func(R) bool

// RecordTable is a single named table of a generic document-style store.
//
// The store offers no multi-record transactions, no locking, and no
// secondary indexes. Every multi-record effect built on top of it
// (cascading deletes, the rent send/pickup double writes) is a sequence of
// independent read-then-write steps with no isolation guarantee; a crash
// mid-sequence leaves partial state behind. The managers document those
// windows instead of closing them.
type RecordTable[R Record] interface {
	// Create inserts a record. No uniqueness check is performed beyond
	// what callers enforce.
	Create(ctx context.Context, record R) error

	// Read returns all records matching the predicate, in storage order.
	Read(ctx context.Context, match Predicate[R]) ([]R, error)

	// Update replaces the stored record whose id equals record's id.
	// Ids are immutable by construction, since the lookup is by id.
	// Returns an ObjectNotFoundError when no record matches.
	Update(ctx context.Context, record R) error

	// Delete removes all records matching the predicate. Deleting nothing
	// is not an error.
	Delete(ctx context.Context, match Predicate[R]) error
}

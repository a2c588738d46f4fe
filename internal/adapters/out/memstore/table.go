// Package memstore provides an in-memory implementation of the record store.
// It is the default backend for development and for the manager unit tests;
// the gormstore adapter provides the durable alternative.
package memstore

import (
	"context"
	"sync"

	"bloqnet/internal/core/ports"
	"bloqnet/internal/pkg/errs"
)

// Table is a mutex-guarded in-memory record table.
// Records are kept in insertion order, matching the storage-order contract
// of RecordTable.Read. Like the real store, it offers no transactions: each
// call is atomic on its own, nothing more.
type Table[R ports.Record] struct {
	mu      sync.RWMutex
	name    string
	records []R
}

// NewTable creates an empty table with the given name.
func NewTable[R ports.Record](name string) *Table[R] {
	return &Table[R]{name: name}
}

// Create inserts a record at the end of the table.
func (t *Table[R]) Create(_ context.Context, record R) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.records = append(t.records, record)
	return nil
}

// Read returns all records matching the predicate in insertion order.
func (t *Table[R]) Read(_ context.Context, match ports.Predicate[R]) ([]R, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	found := make([]R, 0)
	for _, record := range t.records {
		if match(record) {
			found = append(found, record)
		}
	}
	return found, nil
}

// Update replaces the stored record carrying the same id.
func (t *Table[R]) Update(_ context.Context, record R) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := record.RecordID()
	for i := range t.records {
		if t.records[i].RecordID().IsEqual(id) {
			t.records[i] = record
			return nil
		}
	}
	return errs.NewObjectNotFoundError(t.name, id.String())
}

// Delete removes every record matching the predicate.
func (t *Table[R]) Delete(_ context.Context, match ports.Predicate[R]) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.records[:0]
	for _, record := range t.records {
		if !match(record) {
			kept = append(kept, record)
		}
	}
	t.records = kept
	return nil
}

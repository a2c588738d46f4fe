// Package gormstore implements the record store on PostgreSQL using GORM.
//
// Each named table holds flat JSON documents in (id, doc) rows. Predicate
// queries are answered by loading the whole table and filtering decoded
// documents in process, which is exactly the full-table-scan contract of
// the store: no secondary indexes, no pushdown, no transactions.
package gormstore

import (
	"context"
	"encoding/json"

	"bloqnet/internal/core/ports"
	"bloqnet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// documentRow is the relational shape of a stored record.
type documentRow struct {
	ID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Doc string    `gorm:"type:jsonb"`
}

// Migrate creates the given document tables if they do not exist.
func Migrate(db *gorm.DB, names ...string) error {
	for _, name := range names {
		if err := db.Table(name).AutoMigrate(&documentRow{}); err != nil {
			return err
		}
	}
	return nil
}

// Table is a RecordTable backed by a single Postgres table of documents.
type Table[R ports.Record] struct {
	db   *gorm.DB
	name string
}

// NewTable creates a table handle bound to the named Postgres table.
func NewTable[R ports.Record](db *gorm.DB, name string) *Table[R] {
	return &Table[R]{db: db, name: name}
}

// Create inserts a record as a new document row.
func (t *Table[R]) Create(ctx context.Context, record R) error {
	row, err := toRow(record)
	if err != nil {
		return err
	}

	return t.db.WithContext(ctx).Table(t.name).Create(&row).Error
}

// Read returns all records matching the predicate in storage order.
func (t *Table[R]) Read(ctx context.Context, match ports.Predicate[R]) ([]R, error) {
	var rows []documentRow
	if err := t.db.WithContext(ctx).Table(t.name).Find(&rows).Error; err != nil {
		return nil, err
	}

	found := make([]R, 0, len(rows))
	for _, row := range rows {
		var record R
		if err := json.Unmarshal([]byte(row.Doc), &record); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(t.name, err)
		}
		if match(record) {
			found = append(found, record)
		}
	}
	return found, nil
}

// Update replaces the document carrying the record's id.
func (t *Table[R]) Update(ctx context.Context, record R) error {
	row, err := toRow(record)
	if err != nil {
		return err
	}

	result := t.db.WithContext(ctx).Table(t.name).Where("id = ?", row.ID).Update("doc", row.Doc)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(t.name, record.RecordID().String())
	}
	return nil
}

// Delete removes every document matching the predicate.
// The matching ids are collected by a full scan first; the delete itself is
// a second, independent statement.
func (t *Table[R]) Delete(ctx context.Context, match ports.Predicate[R]) error {
	matched, err := t.Read(ctx, match)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(matched))
	for _, record := range matched {
		ids = append(ids, record.RecordID().Bytes())
	}

	return t.db.WithContext(ctx).Table(t.name).Where("id IN ?", ids).Delete(&documentRow{}).Error
}

func toRow[R ports.Record](record R) (documentRow, error) {
	doc, err := json.Marshal(record)
	if err != nil {
		return documentRow{}, errs.NewValueIsInvalidErrorWithCause("record", err)
	}

	return documentRow{
		ID:  record.RecordID().Bytes(),
		Doc: string(doc),
	}, nil
}

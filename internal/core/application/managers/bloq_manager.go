package managers

import (
	"context"

	"bloqnet/internal/core/domain/model/bloq"
	"bloqnet/internal/core/domain/model/locker"
	"bloqnet/internal/core/domain/model/rent"
	"bloqnet/internal/core/ports"
)

// BloqManager manages bloq records. It holds the locker and rent tables as
// well because deleting a bloq cascades through both.
type BloqManager struct {
	bloqs   ports.RecordTable[bloq.Bloq]
	lockers ports.RecordTable[locker.Locker]
	rents   ports.RecordTable[rent.Rent]
}

func NewBloqManager(bloqs ports.RecordTable[bloq.Bloq],
	lockers ports.RecordTable[locker.Locker],
	rents ports.RecordTable[rent.Rent]) *BloqManager {
	return &BloqManager{bloqs: bloqs, lockers: lockers, rents: rents}
}

func (m *BloqManager) GetAll(ctx context.Context) ([]bloq.Bloq, error) {
	return m.bloqs.Read(ctx, everything[bloq.Bloq])
}

func (m *BloqManager) GetByID(ctx context.Context, id string) (bloq.Bloq, error) {
	return findByID(ctx, m.bloqs, "bloqId", id)
}

func (m *BloqManager) Create(ctx context.Context, payload map[string]any) (bloq.Bloq, error) {
	if err := rejectClientFields(payload, "id"); err != nil {
		return bloq.Bloq{}, err
	}
	if err := validatePayload(bloqCreateSchema, payload); err != nil {
		return bloq.Bloq{}, err
	}

	created := bloq.New(stringField(payload, "title"), stringField(payload, "address"))
	if err := m.bloqs.Create(ctx, created); err != nil {
		return bloq.Bloq{}, err
	}
	return created, nil
}

func (m *BloqManager) Update(ctx context.Context, payload map[string]any) (bloq.Bloq, error) {
	if err := validatePayload(bloqUpdateSchema, payload); err != nil {
		return bloq.Bloq{}, err
	}

	existing, err := findByID(ctx, m.bloqs, "bloqId", stringField(payload, "id"))
	if err != nil {
		return bloq.Bloq{}, err
	}

	updated := bloq.Bloq{
		ID:      existing.ID,
		Title:   stringField(payload, "title"),
		Address: stringField(payload, "address"),
	}
	if err := m.bloqs.Update(ctx, updated); err != nil {
		return bloq.Bloq{}, err
	}
	return updated, nil
}

// Delete removes a bloq and cascades through its lockers and their rents.
// The cascade is a sequence of independent writes: the bloq row goes first,
// then each locker's rents, then the lockers. A failure mid-way leaves
// orphaned children but never a dangling parent.
func (m *BloqManager) Delete(ctx context.Context, id string) error {
	if _, err := findByID(ctx, m.bloqs, "bloqId", id); err != nil {
		return err
	}

	if err := m.bloqs.Delete(ctx, func(b bloq.Bloq) bool {
		return b.ID.String() == id
	}); err != nil {
		return err
	}

	orphaned, err := m.lockers.Read(ctx, func(l locker.Locker) bool {
		return l.BloqID.String() == id
	})
	if err != nil {
		return err
	}
	for _, l := range orphaned {
		lockerID := l.ID
		if err := m.rents.Delete(ctx, func(r rent.Rent) bool {
			return r.LockerID != nil && r.LockerID.IsEqual(lockerID)
		}); err != nil {
			return err
		}
	}

	return m.lockers.Delete(ctx, func(l locker.Locker) bool {
		return l.BloqID.String() == id
	})
}

package managers

import (
	"context"

	"bloqnet/internal/core/domain/model/bloq"
	"bloqnet/internal/core/domain/model/locker"
	"bloqnet/internal/core/domain/model/rent"
	"bloqnet/internal/core/ports"
	"bloqnet/internal/pkg/errs"
)

// LockerManager manages locker records, including the open/close door
// operations. Bloq existence on create is checked with a direct read of the
// bloqs table; managers never call each other.
type LockerManager struct {
	lockers ports.RecordTable[locker.Locker]
	bloqs   ports.RecordTable[bloq.Bloq]
	rents   ports.RecordTable[rent.Rent]
}

func NewLockerManager(lockers ports.RecordTable[locker.Locker],
	bloqs ports.RecordTable[bloq.Bloq],
	rents ports.RecordTable[rent.Rent]) *LockerManager {
	return &LockerManager{lockers: lockers, bloqs: bloqs, rents: rents}
}

func (m *LockerManager) GetAll(ctx context.Context) ([]locker.Locker, error) {
	return m.lockers.Read(ctx, everything[locker.Locker])
}

func (m *LockerManager) GetByID(ctx context.Context, id string) (locker.Locker, error) {
	return findByID(ctx, m.lockers, "lockerId", id)
}

// GetByBloqID returns the lockers belonging to a bloq. An empty result is an
// ObjectNotFoundError, whether the bloq has no lockers or does not exist at
// all; the two cases are indistinguishable here.
func (m *LockerManager) GetByBloqID(ctx context.Context, bloqID string) ([]locker.Locker, error) {
	matches, err := m.lockers.Read(ctx, func(l locker.Locker) bool {
		return l.BloqID.String() == bloqID
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errs.NewObjectNotFoundError("bloqId", bloqID)
	}
	return matches, nil
}

func (m *LockerManager) Create(ctx context.Context, payload map[string]any) (locker.Locker, error) {
	if err := rejectClientFields(payload, "id"); err != nil {
		return locker.Locker{}, err
	}
	if err := validatePayload(lockerCreateSchema, payload); err != nil {
		return locker.Locker{}, err
	}

	bloqID := stringField(payload, "bloqId")
	parent, err := findByID(ctx, m.bloqs, "bloqId", bloqID)
	if err != nil {
		return locker.Locker{}, err
	}

	created, err := locker.New(parent.ID,
		locker.Status(stringField(payload, "status")),
		boolField(payload, "isOccupied"))
	if err != nil {
		return locker.Locker{}, err
	}
	if err := m.lockers.Create(ctx, created); err != nil {
		return locker.Locker{}, err
	}
	return created, nil
}

func (m *LockerManager) Open(ctx context.Context, id string) (locker.Locker, error) {
	return m.setDoor(ctx, id, (*locker.Locker).Open)
}

func (m *LockerManager) Close(ctx context.Context, id string) (locker.Locker, error) {
	return m.setDoor(ctx, id, (*locker.Locker).Close)
}

func (m *LockerManager) setDoor(ctx context.Context, id string,
	toggle func(*locker.Locker) error) (locker.Locker, error) {
	found, err := findByID(ctx, m.lockers, "lockerId", id)
	if err != nil {
		return locker.Locker{}, err
	}
	if err := toggle(&found); err != nil {
		return locker.Locker{}, err
	}
	if err := m.lockers.Update(ctx, found); err != nil {
		return locker.Locker{}, err
	}
	return found, nil
}

// Delete removes a locker and every rent referencing it, rents first so a
// mid-cascade failure cannot leave a rent pointing at a deleted locker.
func (m *LockerManager) Delete(ctx context.Context, id string) error {
	found, err := findByID(ctx, m.lockers, "lockerId", id)
	if err != nil {
		return err
	}

	lockerID := found.ID
	if err := m.rents.Delete(ctx, func(r rent.Rent) bool {
		return r.LockerID != nil && r.LockerID.IsEqual(lockerID)
	}); err != nil {
		return err
	}

	return m.lockers.Delete(ctx, func(l locker.Locker) bool {
		return l.ID.IsEqual(lockerID)
	})
}

package managers

import (
	"context"
	"errors"
	"log/slog"

	"bloqnet/internal/core/domain/model/locker"
	"bloqnet/internal/core/domain/model/rent"
	"bloqnet/internal/core/ports"
	"bloqnet/internal/pkg/errs"
)

// RentManager manages rent records and drives the delivery lifecycle.
// Send and pickup update locker occupancy alongside the rent, as two
// independent writes: the locker is persisted first so a failure between
// the writes over-reports occupancy instead of under-reporting it.
type RentManager struct {
	rents   ports.RecordTable[rent.Rent]
	lockers ports.RecordTable[locker.Locker]
	logger  *slog.Logger
}

func NewRentManager(rents ports.RecordTable[rent.Rent],
	lockers ports.RecordTable[locker.Locker],
	logger *slog.Logger) *RentManager {
	return &RentManager{rents: rents, lockers: lockers, logger: logger}
}

func (m *RentManager) GetAll(ctx context.Context) ([]rent.Rent, error) {
	return m.rents.Read(ctx, everything[rent.Rent])
}

func (m *RentManager) GetByID(ctx context.Context, id string) (rent.Rent, error) {
	return findByID(ctx, m.rents, "rentId", id)
}

// GetByLockerID returns the rents assigned to a locker. The empty string
// selects unassigned rents (lockerId null). An empty result is an
// ObjectNotFoundError.
func (m *RentManager) GetByLockerID(ctx context.Context, lockerID string) ([]rent.Rent, error) {
	matches, err := m.rents.Read(ctx, func(r rent.Rent) bool {
		if lockerID == "" {
			return r.LockerID == nil
		}
		return r.LockerID != nil && r.LockerID.String() == lockerID
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errs.NewObjectNotFoundError("lockerId", lockerID)
	}
	return matches, nil
}

func (m *RentManager) Create(ctx context.Context, payload map[string]any) (rent.Rent, error) {
	if err := rejectClientFields(payload, "id", "lockerId", "status"); err != nil {
		return rent.Rent{}, err
	}
	if err := validatePayload(rentCreateSchema, payload); err != nil {
		return rent.Rent{}, err
	}

	created, err := rent.New(numberField(payload, "weight"), rent.Size(stringField(payload, "size")))
	if err != nil {
		return rent.Rent{}, err
	}
	if err := m.rents.Create(ctx, created); err != nil {
		return rent.Rent{}, err
	}
	return created, nil
}

// Send assigns a CREATED rent to a locker and moves it to WAITING_DROPOFF,
// occupying the locker.
func (m *RentManager) Send(ctx context.Context, rentID, lockerID string) (rent.Rent, error) {
	rnt, lkr, err := m.pair(ctx, rentID, lockerID)
	if err != nil {
		return rent.Rent{}, err
	}

	if err := rnt.Send(lkr.ID); err != nil {
		if errors.Is(err, errs.ErrIntegrityFault) {
			m.logger.ErrorContext(ctx, "rent data integrity fault",
				"rentId", rentID, "lockerId", lockerID, "error", err)
		}
		return rent.Rent{}, err
	}
	if err := lkr.Occupy(); err != nil {
		return rent.Rent{}, err
	}

	if err := m.lockers.Update(ctx, lkr); err != nil {
		return rent.Rent{}, err
	}
	if err := m.rents.Update(ctx, rnt); err != nil {
		return rent.Rent{}, err
	}
	return rnt, nil
}

// Dropoff confirms the parcel was placed in its assigned locker, moving the
// rent to WAITING_PICKUP. The door must be open; occupancy does not change.
func (m *RentManager) Dropoff(ctx context.Context, rentID, lockerID string) (rent.Rent, error) {
	rnt, lkr, err := m.pair(ctx, rentID, lockerID)
	if err != nil {
		return rent.Rent{}, err
	}

	if err := rnt.Dropoff(lkr.ID); err != nil {
		return rent.Rent{}, err
	}
	if err := lkr.EnsureOpen(); err != nil {
		return rent.Rent{}, err
	}

	if err := m.rents.Update(ctx, rnt); err != nil {
		return rent.Rent{}, err
	}
	return rnt, nil
}

// Pickup confirms the parcel left its locker, moving the rent to DELIVERED
// and releasing the locker. The door must be open and the locker occupied.
func (m *RentManager) Pickup(ctx context.Context, rentID, lockerID string) (rent.Rent, error) {
	rnt, lkr, err := m.pair(ctx, rentID, lockerID)
	if err != nil {
		return rent.Rent{}, err
	}

	if err := rnt.Pickup(lkr.ID); err != nil {
		return rent.Rent{}, err
	}
	if err := lkr.EnsureOpen(); err != nil {
		return rent.Rent{}, err
	}
	if err := lkr.Release(); err != nil {
		return rent.Rent{}, err
	}

	if err := m.lockers.Update(ctx, lkr); err != nil {
		return rent.Rent{}, err
	}
	if err := m.rents.Update(ctx, rnt); err != nil {
		return rent.Rent{}, err
	}
	return rnt, nil
}

// Delete removes a rent record. It deliberately does not release the
// assigned locker's occupancy; an in-transit rent deleted here leaves its
// locker occupied until the occupancy audit surfaces it.
func (m *RentManager) Delete(ctx context.Context, id string) error {
	if _, err := findByID(ctx, m.rents, "rentId", id); err != nil {
		return err
	}
	return m.rents.Delete(ctx, func(r rent.Rent) bool {
		return r.ID.String() == id
	})
}

func (m *RentManager) pair(ctx context.Context, rentID, lockerID string) (rent.Rent, locker.Locker, error) {
	rnt, err := findByID(ctx, m.rents, "rentId", rentID)
	if err != nil {
		return rent.Rent{}, locker.Locker{}, err
	}
	lkr, err := findByID(ctx, m.lockers, "lockerId", lockerID)
	if err != nil {
		return rent.Rent{}, locker.Locker{}, err
	}
	return rnt, lkr, nil
}

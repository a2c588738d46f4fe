package managers

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"bloqnet/internal/adapters/out/memstore"
	"bloqnet/internal/core/domain/model/bloq"
	"bloqnet/internal/core/domain/model/locker"
	"bloqnet/internal/core/domain/model/rent"
	"bloqnet/internal/core/ports"
)

// harness wires the three managers over shared in-memory tables, the same
// topology the composition root builds for the memory storage driver.
type harness struct {
	bloqs   ports.RecordTable[bloq.Bloq]
	lockers ports.RecordTable[locker.Locker]
	rents   ports.RecordTable[rent.Rent]

	bloqManager   *BloqManager
	lockerManager *LockerManager
	rentManager   *RentManager
}

func newHarness() *harness {
	bloqs := memstore.NewTable[bloq.Bloq](ports.TableBloqs)
	lockers := memstore.NewTable[locker.Locker](ports.TableLockers)
	rents := memstore.NewTable[rent.Rent](ports.TableRents)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &harness{
		bloqs:   bloqs,
		lockers: lockers,
		rents:   rents,

		bloqManager:   NewBloqManager(bloqs, lockers, rents),
		lockerManager: NewLockerManager(lockers, bloqs, rents),
		rentManager:   NewRentManager(rents, lockers, logger),
	}
}

func (h *harness) mustCreateBloq(t *testing.T, title, address string) bloq.Bloq {
	t.Helper()
	created, err := h.bloqManager.Create(context.Background(), map[string]any{
		"title":   title,
		"address": address,
	})
	require.NoError(t, err)
	return created
}

func (h *harness) mustCreateLocker(t *testing.T, bloqID string, status string, isOccupied bool) locker.Locker {
	t.Helper()
	created, err := h.lockerManager.Create(context.Background(), map[string]any{
		"bloqId":     bloqID,
		"status":     status,
		"isOccupied": isOccupied,
	})
	require.NoError(t, err)
	return created
}

func (h *harness) mustCreateRent(t *testing.T, weight float64, size string) rent.Rent {
	t.Helper()
	created, err := h.rentManager.Create(context.Background(), map[string]any{
		"weight": weight,
		"size":   size,
	})
	require.NoError(t, err)
	return created
}

func (h *harness) lockerByID(t *testing.T, id string) locker.Locker {
	t.Helper()
	found, err := h.lockerManager.GetByID(context.Background(), id)
	require.NoError(t, err)
	return found
}

func (h *harness) rentByID(t *testing.T, id string) rent.Rent {
	t.Helper()
	found, err := h.rentManager.GetByID(context.Background(), id)
	require.NoError(t, err)
	return found
}

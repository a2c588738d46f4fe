package managers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloqnet/internal/core/domain/model/locker"
	"bloqnet/internal/core/domain/model/rent"
	"bloqnet/internal/pkg/errs"
)

func Test_BloqManager_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("should create a bloq with a server-assigned id", func(t *testing.T) {
		h := newHarness()

		created, err := h.bloqManager.Create(ctx, map[string]any{
			"title":   "Luitton Vouis Champs Elysées",
			"address": "101 Av. des Champs-Élysées, 75008 Paris, France",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID.String())
		assert.Equal(t, "Luitton Vouis Champs Elysées", created.Title)

		stored, err := h.bloqManager.GetByID(ctx, created.ID.String())
		require.NoError(t, err)
		assert.Equal(t, created, stored)
	})

	t.Run("should reject a client-chosen id", func(t *testing.T) {
		h := newHarness()

		_, err := h.bloqManager.Create(ctx, map[string]any{
			"id":      "some-id",
			"title":   "Bluberry and Pineapple",
			"address": "Somewhere",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, http.StatusBadRequest, errs.HTTPStatus(err))
	})

	t.Run("should reject a payload with a missing field", func(t *testing.T) {
		h := newHarness()

		_, err := h.bloqManager.Create(ctx, map[string]any{"title": "No address"})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unknown field", func(t *testing.T) {
		h := newHarness()

		_, err := h.bloqManager.Create(ctx, map[string]any{
			"title":   "Riod Eixample",
			"address": "Passeig de Gràcia, 74, Barcelona",
			"color":   "red",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func Test_BloqManager_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("should list bloqs in insertion order", func(t *testing.T) {
		h := newHarness()
		first := h.mustCreateBloq(t, "First", "Address 1")
		second := h.mustCreateBloq(t, "Second", "Address 2")

		all, err := h.bloqManager.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, first.ID, all[0].ID)
		assert.Equal(t, second.ID, all[1].ID)
	})

	t.Run("should return not found for an unknown id", func(t *testing.T) {
		h := newHarness()

		_, err := h.bloqManager.GetByID(ctx, "4b8ed4e4-8225-4f4e-9c2a-snip")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, http.StatusNotFound, errs.HTTPStatus(err))
	})
}

func Test_BloqManager_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("should replace title and address, keeping the id", func(t *testing.T) {
		h := newHarness()
		created := h.mustCreateBloq(t, "Old title", "Old address")

		updated, err := h.bloqManager.Update(ctx, map[string]any{
			"id":      created.ID.String(),
			"title":   "New title",
			"address": "New address",
		})

		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "New title", updated.Title)

		stored, err := h.bloqManager.GetByID(ctx, created.ID.String())
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	})

	t.Run("should return not found for an unknown id", func(t *testing.T) {
		h := newHarness()

		_, err := h.bloqManager.Update(ctx, map[string]any{
			"id":      "ba15d3b8-6e97-4cfb-b4d3-09f107f0c1bc",
			"title":   "New title",
			"address": "New address",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject a payload without an id", func(t *testing.T) {
		h := newHarness()

		_, err := h.bloqManager.Update(ctx, map[string]any{
			"title":   "New title",
			"address": "New address",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func Test_BloqManager_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("should cascade through lockers and their rents", func(t *testing.T) {
		h := newHarness()

		doomed := h.mustCreateBloq(t, "Doomed", "Nowhere 1")
		survivor := h.mustCreateBloq(t, "Survivor", "Somewhere 2")

		doomedLockerA := h.mustCreateLocker(t, doomed.ID.String(), "OPEN", false)
		doomedLockerB := h.mustCreateLocker(t, doomed.ID.String(), "CLOSED", false)
		survivorLocker := h.mustCreateLocker(t, survivor.ID.String(), "OPEN", false)

		rentA := h.mustCreateRent(t, 5, "M")
		rentB := h.mustCreateRent(t, 7, "L")
		rentC := h.mustCreateRent(t, 9, "XL")
		unassigned := h.mustCreateRent(t, 1, "XS")

		_, err := h.rentManager.Send(ctx, rentA.ID.String(), doomedLockerA.ID.String())
		require.NoError(t, err)
		_, err = h.rentManager.Send(ctx, rentB.ID.String(), doomedLockerB.ID.String())
		require.NoError(t, err)
		_, err = h.rentManager.Send(ctx, rentC.ID.String(), survivorLocker.ID.String())
		require.NoError(t, err)

		require.NoError(t, h.bloqManager.Delete(ctx, doomed.ID.String()))

		_, err = h.bloqManager.GetByID(ctx, doomed.ID.String())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)

		remainingLockers, err := h.lockers.Read(ctx, func(locker.Locker) bool { return true })
		require.NoError(t, err)
		require.Len(t, remainingLockers, 1)
		assert.Equal(t, survivorLocker.ID, remainingLockers[0].ID)

		remainingRents, err := h.rents.Read(ctx, func(rent.Rent) bool { return true })
		require.NoError(t, err)
		require.Len(t, remainingRents, 2)
		assert.Equal(t, rentC.ID, remainingRents[0].ID)
		assert.Equal(t, unassigned.ID, remainingRents[1].ID)
	})

	t.Run("should return not found for an unknown id", func(t *testing.T) {
		h := newHarness()

		err := h.bloqManager.Delete(ctx, "c2cb9752-9b3a-4d4f-b818-2e2ba4728727")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should leave unrelated bloqs untouched", func(t *testing.T) {
		h := newHarness()
		doomed := h.mustCreateBloq(t, "Doomed", "Nowhere")
		survivor := h.mustCreateBloq(t, "Survivor", "Somewhere")

		require.NoError(t, h.bloqManager.Delete(ctx, doomed.ID.String()))

		all, err := h.bloqManager.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, survivor.ID, all[0].ID)
	})
}

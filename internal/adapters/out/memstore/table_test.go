package memstore_test

import (
	"context"
	"testing"

	"bloqnet/internal/adapters/out/memstore"
	"bloqnet/internal/core/domain/model/bloq"
	"bloqnet/internal/core/ports"
	"bloqnet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchAll(bloq.Bloq) bool { return true }

func matchID(id string) ports.Predicate[bloq.Bloq] {
	return func(b bloq.Bloq) bool { return b.ID.String() == id }
}

func TestTable_CreateAndRead(t *testing.T) {
	ctx := context.Background()
	table := memstore.NewTable[bloq.Bloq](ports.TableBloqs)

	first := bloq.New("first", "a")
	second := bloq.New("second", "b")
	require.NoError(t, table.Create(ctx, first))
	require.NoError(t, table.Create(ctx, second))

	t.Run("read preserves insertion order", func(t *testing.T) {
		all, err := table.Read(ctx, matchAll)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "first", all[0].Title)
		assert.Equal(t, "second", all[1].Title)
	})

	t.Run("read filters by predicate", func(t *testing.T) {
		found, err := table.Read(ctx, matchID(second.ID.String()))
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "second", found[0].Title)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		found, err := table.Read(ctx, func(bloq.Bloq) bool { return false })
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestTable_Update(t *testing.T) {
	ctx := context.Background()
	table := memstore.NewTable[bloq.Bloq](ports.TableBloqs)

	stored := bloq.New("before", "a")
	require.NoError(t, table.Create(ctx, stored))

	t.Run("replaces the record with the same id", func(t *testing.T) {
		stored.Title = "after"
		require.NoError(t, table.Update(ctx, stored))

		found, err := table.Read(ctx, matchID(stored.ID.String()))
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "after", found[0].Title)
	})

	t.Run("missing id is not found", func(t *testing.T) {
		err := table.Update(ctx, bloq.New("ghost", "x"))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestTable_Delete(t *testing.T) {
	ctx := context.Background()
	table := memstore.NewTable[bloq.Bloq](ports.TableBloqs)

	keep := bloq.New("keep", "a")
	drop1 := bloq.New("drop", "b")
	drop2 := bloq.New("drop", "c")
	for _, b := range []bloq.Bloq{keep, drop1, drop2} {
		require.NoError(t, table.Create(ctx, b))
	}

	require.NoError(t, table.Delete(ctx, func(b bloq.Bloq) bool { return b.Title == "drop" }))

	all, err := table.Read(ctx, matchAll)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "keep", all[0].Title)

	// Deleting nothing is not an error.
	require.NoError(t, table.Delete(ctx, func(bloq.Bloq) bool { return false }))
}

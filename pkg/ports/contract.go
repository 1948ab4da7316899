package ports

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aymanimtyaz/stateengine/pkg/domain"
)

// RunStateStoreContract runs a suite of tests to verify that a StateStore
// implementation adheres to the interface contract. Every adapter's test
// package runs it against a fresh store.
func RunStateStoreContract(t *testing.T, store StateStore) {
	ctx := context.Background()
	uid := "contract-" + uuid.NewString()

	t.Run("save and load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, uid, "processing"))

		got, err := store.Load(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, "processing", got)
	})

	t.Run("load absent identifier", func(t *testing.T) {
		got, err := store.Load(ctx, "never-seen-"+uuid.NewString())
		require.NoError(t, err, "absence must not be an error")
		assert.Nil(t, got)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, uid, "a"))
		require.NoError(t, store.Save(ctx, uid, "b"))

		got, err := store.Load(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, "b", got)
	})

	t.Run("scalar kinds round-trip canonically", func(t *testing.T) {
		for _, state := range []domain.State{"text", 7, 2.5} {
			require.NoError(t, store.Save(ctx, uid, state))

			got, err := store.Load(ctx, uid)
			require.NoError(t, err)

			want, err := domain.NormalizeState(state)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("identifier kinds never collide", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "1", "text-keyed"))
		require.NoError(t, store.Save(ctx, 1, "int-keyed"))
		require.NoError(t, store.Save(ctx, 1.0, "real-keyed"))

		got, err := store.Load(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "text-keyed", got)

		got, err = store.Load(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "int-keyed", got)

		got, err = store.Load(ctx, 1.0)
		require.NoError(t, err)
		assert.Equal(t, "real-keyed", got)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, uid, "away"))
		require.NoError(t, store.Delete(ctx, uid))

		got, err := store.Load(ctx, uid)
		require.NoError(t, err)
		assert.Nil(t, got)

		// Idempotent: deleting an absent entry is a no-op.
		require.NoError(t, store.Delete(ctx, uid))
	})

	t.Run("invalid identifier kinds", func(t *testing.T) {
		assert.ErrorIs(t, store.Save(ctx, true, "x"), domain.ErrInvalidIdentifierKind)

		_, err := store.Load(ctx, []int{1})
		assert.ErrorIs(t, err, domain.ErrInvalidIdentifierKind)

		assert.ErrorIs(t, store.Delete(ctx, nil), domain.ErrInvalidIdentifierKind)
	})

	t.Run("invalid state kinds", func(t *testing.T) {
		assert.ErrorIs(t, store.Save(ctx, uid, true), domain.ErrInvalidStateKind)
	})
}

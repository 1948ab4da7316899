package domain_test

import (
	"testing"

	"github.com/aymanimtyaz/stateengine/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeState(t *testing.T) {
	t.Run("canonical kinds", func(t *testing.T) {
		got, err := domain.NormalizeState("asleep")
		require.NoError(t, err)
		assert.Equal(t, "asleep", got)

		got, err = domain.NormalizeState(int8(7))
		require.NoError(t, err)
		assert.Equal(t, int64(7), got)

		got, err = domain.NormalizeState(uint16(7))
		require.NoError(t, err)
		assert.Equal(t, int64(7), got)

		got, err = domain.NormalizeState(float32(1.5))
		require.NoError(t, err)
		assert.Equal(t, float64(1.5), got)
	})

	t.Run("widths agree", func(t *testing.T) {
		a, err := domain.NormalizeState(3)
		require.NoError(t, err)
		b, err := domain.NormalizeState(int32(3))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("booleans rejected", func(t *testing.T) {
		_, err := domain.NormalizeState(true)
		assert.ErrorIs(t, err, domain.ErrInvalidStateKind)
	})

	t.Run("nil rejected", func(t *testing.T) {
		_, err := domain.NormalizeState(nil)
		assert.ErrorIs(t, err, domain.ErrInvalidStateKind)
	})

	t.Run("non-scalar rejected", func(t *testing.T) {
		_, err := domain.NormalizeState(struct{ N int }{1})
		assert.ErrorIs(t, err, domain.ErrInvalidStateKind)

		_, err = domain.NormalizeState([]string{"x"})
		assert.ErrorIs(t, err, domain.ErrInvalidStateKind)
	})
}

func TestNormalizeUID(t *testing.T) {
	got, err := domain.NormalizeUID(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	_, err = domain.NormalizeUID(false)
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifierKind)

	_, err = domain.NormalizeUID(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifierKind)
}

func TestStoreKey_KindsNeverCollide(t *testing.T) {
	keys := map[string]bool{}
	for _, uid := range []domain.UID{"1", int64(1), float64(1)} {
		keys[domain.StoreKey(uid)] = true
	}
	assert.Len(t, keys, 3)
}

func TestStateCodec(t *testing.T) {
	t.Run("integer kind survives the trip", func(t *testing.T) {
		data, err := domain.EncodeState(42)
		require.NoError(t, err)

		got, err := domain.DecodeState(data)
		require.NoError(t, err)
		assert.Equal(t, int64(42), got)
	})

	t.Run("text and real", func(t *testing.T) {
		for _, s := range []domain.State{"awake", 2.5} {
			data, err := domain.EncodeState(s)
			require.NoError(t, err)
			got, err := domain.DecodeState(data)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		}
	})

	t.Run("invalid state does not encode", func(t *testing.T) {
		_, err := domain.EncodeState(true)
		assert.ErrorIs(t, err, domain.ErrInvalidStateKind)
	})

	t.Run("unknown wire kind does not decode", func(t *testing.T) {
		_, err := domain.DecodeState([]byte(`{"kind":"blob"}`))
		assert.ErrorIs(t, err, domain.ErrInvalidStateKind)
	})
}

func TestStoreError(t *testing.T) {
	cause := assert.AnError
	err := &domain.StoreError{Op: "get", Key: "s:m1", Cause: cause}

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "get")
	assert.Contains(t, err.Error(), "s:m1")
}

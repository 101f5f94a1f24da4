package fieldset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/fieldset"
)

func newTestSchema(t *testing.T) *fieldset.Schema {
	t.Helper()
	schema, err := fieldset.New(
		fieldset.Field("buns", fieldset.Range(2, 3)),
		fieldset.Field("sauce", fieldset.OneOf("ketchup", "mayo")),
	)
	require.NoError(t, err)
	return schema
}

func TestRecordGet(t *testing.T) {
	t.Parallel()

	t.Run("returns stored value after a successful write", func(t *testing.T) {
		rec := newTestSchema(t).NewRecord()
		require.NoError(t, rec.Set("buns", fieldset.Int(2)))

		v, err := rec.Get("buns")
		require.NoError(t, err)
		assert.True(t, v.Equal(fieldset.Int(2)))
	})

	t.Run("fails before the first write", func(t *testing.T) {
		rec := newTestSchema(t).NewRecord()

		_, err := rec.Get("buns")
		require.Error(t, err)
		assert.ErrorIs(t, err, fieldset.ErrAttributeNotSet)

		var fe *fieldset.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "buns", fe.Field)
	})

	t.Run("fails on a field the schema does not define", func(t *testing.T) {
		rec := newTestSchema(t).NewRecord()

		_, err := rec.Get("pickles")
		assert.ErrorIs(t, err, fieldset.ErrUnknownField)
	})
}

func TestRecordSet(t *testing.T) {
	t.Parallel()

	t.Run("overwrites previous value", func(t *testing.T) {
		rec := newTestSchema(t).NewRecord()
		require.NoError(t, rec.Set("buns", fieldset.Int(2)))
		require.NoError(t, rec.Set("buns", fieldset.Int(3)))

		v, err := rec.Get("buns")
		require.NoError(t, err)
		assert.True(t, v.Equal(fieldset.Int(3)))
	})

	t.Run("rejected write leaves prior value untouched", func(t *testing.T) {
		rec := newTestSchema(t).NewRecord()
		require.NoError(t, rec.Set("buns", fieldset.Int(2)))

		err := rec.Set("buns", fieldset.Int(4))
		require.Error(t, err)
		assert.ErrorIs(t, err, fieldset.ErrOutOfRange)

		v, err := rec.Get("buns")
		require.NoError(t, err)
		assert.True(t, v.Equal(fieldset.Int(2)))
	})

	t.Run("rejected first write stores nothing", func(t *testing.T) {
		rec := newTestSchema(t).NewRecord()

		err := rec.Set("sauce", fieldset.String("mustard"))
		assert.ErrorIs(t, err, fieldset.ErrNotInSet)
		assert.False(t, rec.Has("sauce"))
	})

	t.Run("reports the failing field by name", func(t *testing.T) {
		rec := newTestSchema(t).NewRecord()

		err := rec.Set("sauce", fieldset.String("mustard"))
		var fe *fieldset.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "sauce", fe.Field)
		assert.Contains(t, err.Error(), "sauce")
	})

	t.Run("fails on a field the schema does not define", func(t *testing.T) {
		rec := newTestSchema(t).NewRecord()
		err := rec.Set("pickles", fieldset.Int(1))
		assert.ErrorIs(t, err, fieldset.ErrUnknownField)
	})
}

func TestRecordHas(t *testing.T) {
	t.Parallel()

	rec := newTestSchema(t).NewRecord()
	assert.False(t, rec.Has("buns"))
	assert.False(t, rec.Has("pickles"))

	require.NoError(t, rec.Set("buns", fieldset.Int(2)))
	assert.True(t, rec.Has("buns"))
}

func TestRecordValues(t *testing.T) {
	t.Parallel()

	t.Run("snapshots only set fields under public names", func(t *testing.T) {
		rec := newTestSchema(t).NewRecord()
		require.NoError(t, rec.Set("buns", fieldset.Int(2)))

		values := rec.Values()
		require.Len(t, values, 1)
		assert.True(t, values["buns"].Equal(fieldset.Int(2)))
	})

	t.Run("snapshot is detached from the record", func(t *testing.T) {
		rec := newTestSchema(t).NewRecord()
		require.NoError(t, rec.Set("buns", fieldset.Int(2)))

		values := rec.Values()
		values["buns"] = fieldset.Int(99)

		v, err := rec.Get("buns")
		require.NoError(t, err)
		assert.True(t, v.Equal(fieldset.Int(2)))
	})
}

func TestRecordClone(t *testing.T) {
	t.Parallel()

	rec := newTestSchema(t).NewRecord()
	require.NoError(t, rec.Set("buns", fieldset.Int(2)))

	clone := rec.Clone()
	require.NoError(t, clone.Set("buns", fieldset.Int(3)))

	v, err := rec.Get("buns")
	require.NoError(t, err)
	assert.True(t, v.Equal(fieldset.Int(2)), "original must not see the clone's writes")

	assert.Same(t, rec.Schema(), clone.Schema())
}

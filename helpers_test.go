package sift

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// literalTarget carries one addressable field per supported literal kind.
type literalTarget struct {
	Str      string
	I        int
	I8       int8
	U        uint
	F        float64
	B        bool
	Bytes    []byte
	When     time.Time
	ID       uuid.UUID
	PtrInt   *int
	Unusable chan int
}

func literalField(t *testing.T, name string) reflect.Value {
	t.Helper()
	target := &literalTarget{}
	field := reflect.ValueOf(target).Elem().FieldByName(name)
	require.True(t, field.IsValid(), "no field %s", name)
	return field
}

func TestApplyLiteral(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		field := literalField(t, "Str")
		require.NoError(t, applyLiteral(field, "hello", DefaultDateFormats))
		assert.Equal(t, "hello", field.String())
	})

	t.Run("Int", func(t *testing.T) {
		field := literalField(t, "I")
		require.NoError(t, applyLiteral(field, "42", DefaultDateFormats))
		assert.Equal(t, int64(42), field.Int())
	})

	t.Run("Int_Malformed", func(t *testing.T) {
		assert.Error(t, applyLiteral(literalField(t, "I"), "forty", DefaultDateFormats))
	})

	t.Run("Int_Overflow", func(t *testing.T) {
		err := applyLiteral(literalField(t, "I8"), "1000", DefaultDateFormats)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "overflows")
	})

	t.Run("Uint", func(t *testing.T) {
		field := literalField(t, "U")
		require.NoError(t, applyLiteral(field, "7", DefaultDateFormats))
		assert.Equal(t, uint64(7), field.Uint())

		assert.Error(t, applyLiteral(literalField(t, "U"), "-7", DefaultDateFormats))
	})

	t.Run("Float", func(t *testing.T) {
		field := literalField(t, "F")
		require.NoError(t, applyLiteral(field, "1.5", DefaultDateFormats))
		assert.Equal(t, 1.5, field.Float())
	})

	t.Run("Bool_CommonRepresentations", func(t *testing.T) {
		for _, literal := range []string{"true", "1", "yes", "on", "YES", "On", "TrUe"} {
			field := literalField(t, "B")
			require.NoError(t, applyLiteral(field, literal, DefaultDateFormats), "literal %q", literal)
			assert.True(t, field.Bool(), "literal %q", literal)
		}
		for _, literal := range []string{"false", "0", "no", "off", "NO", "Off"} {
			field := literalField(t, "B")
			require.NoError(t, applyLiteral(field, literal, DefaultDateFormats), "literal %q", literal)
			assert.False(t, field.Bool(), "literal %q", literal)
		}
		assert.Error(t, applyLiteral(literalField(t, "B"), "maybe", DefaultDateFormats))
	})

	t.Run("Bytes", func(t *testing.T) {
		field := literalField(t, "Bytes")
		require.NoError(t, applyLiteral(field, "raw", DefaultDateFormats))
		assert.Equal(t, []byte("raw"), field.Bytes())
	})

	t.Run("Time", func(t *testing.T) {
		field := literalField(t, "When")
		require.NoError(t, applyLiteral(field, "2024-06-01", DefaultDateFormats))
		assert.Equal(t, 2024, field.Interface().(time.Time).Year())
	})

	t.Run("Time_CustomFormatsOnly", func(t *testing.T) {
		field := literalField(t, "When")
		assert.Error(t, applyLiteral(field, "2024-06-01", []string{time.Kitchen}))
	})

	t.Run("UUID", func(t *testing.T) {
		field := literalField(t, "ID")
		require.NoError(t, applyLiteral(field, "123e4567-e89b-12d3-a456-426614174000", DefaultDateFormats))
		assert.Equal(t, uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"), field.Interface().(uuid.UUID))
	})

	t.Run("Pointer", func(t *testing.T) {
		field := literalField(t, "PtrInt")
		require.NoError(t, applyLiteral(field, "9", DefaultDateFormats))
		ptr := field.Interface().(*int)
		require.NotNil(t, ptr)
		assert.Equal(t, 9, *ptr)
	})

	t.Run("Unsupported", func(t *testing.T) {
		assert.Error(t, applyLiteral(literalField(t, "Unusable"), "x", DefaultDateFormats))
	})
}

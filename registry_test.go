package sift

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		reg := NewRegistry(RegistryOpts{})
		assert.Equal(t, DefaultDateFormats, reg.dateFormats)
		assert.Equal(t, DefaultMaxDepth, reg.maxDepth)
		assert.Equal(t, "first_name", reg.fieldNameFor("FirstName"))
	})

	t.Run("Overrides", func(t *testing.T) {
		reg := NewRegistry(RegistryOpts{
			DateFormats: []string{time.Kitchen},
			NameMapper:  IdentityNames,
			MaxDepth:    3,
		})
		assert.Equal(t, []string{time.Kitchen}, reg.dateFormats)
		assert.Equal(t, 3, reg.maxDepth)
		assert.Equal(t, "FirstName", reg.fieldNameFor("FirstName"))
	})

	t.Run("ConvertersSeeded", func(t *testing.T) {
		fn := ConverterFunc(func(node Node) (any, error) { return 1, nil })
		reg := NewRegistry(RegistryOpts{
			Converters: map[reflect.Type]ConverterFunc{typeFor[int](): fn},
		})
		_, ok := reg.lookupConverter(typeFor[int]())
		assert.True(t, ok)
	})
}

func TestRegisterConverter(t *testing.T) {
	reg := NewRegistry(RegistryOpts{})

	_, ok := reg.lookupConverter(typeFor[time.Duration]())
	require.False(t, ok)

	RegisterConverter(reg, func(node Node) (time.Duration, error) {
		return time.ParseDuration(node.Str())
	})

	fn, ok := reg.lookupConverter(typeFor[time.Duration]())
	require.True(t, ok)

	out, err := fn(String("2s"))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, out)
}

func TestNameMappers(t *testing.T) {
	t.Run("SnakeCase", func(t *testing.T) {
		cases := map[string]string{
			"Name":      "name",
			"FirstName": "first_name",
			"UserID":    "user_id",
			"URLPath":   "url_path",
			"HTTPCode":  "http_code",
		}
		for in, want := range cases {
			assert.Equal(t, want, SnakeCaseNames(in), "input %q", in)
		}
	})

	t.Run("CamelCase", func(t *testing.T) {
		cases := map[string]string{
			"Name":      "name",
			"FirstName": "firstName",
			"URLPath":   "urlPath",
			"ID":        "id",
		}
		for in, want := range cases {
			assert.Equal(t, want, CamelCaseNames(in), "input %q", in)
		}
	})

	t.Run("Identity", func(t *testing.T) {
		assert.Equal(t, "FirstName", IdentityNames("FirstName"))
	})
}

func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())

	got, err := Extract[int](Int(1), DefaultRegistry())
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

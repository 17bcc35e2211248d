package sift

import (
	"reflect"
	"strings"
	"unicode"
)

///////////////////////////////////////////////////////////////////////////////
// Registry
///////////////////////////////////////////////////////////////////////////////

// ConverterFunc is a custom conversion registered for a single target type.
// It receives the node being extracted and returns a value assignable to the
// registered type. A registered converter takes precedence over every
// structural dispatch rule for its type.
type ConverterFunc func(node Node) (any, error)

// NameMapper converts a declared Go field name into the wire key looked up
// in an object Node. A `sift` tag on the field overrides the mapper.
type NameMapper func(fieldName string) string

// Registry carries the configuration consulted by the extraction engine:
// the custom-converter table, date formats, the field-name mapper, and the
// recursion ceiling.
//
// A Registry must be fully configured before use. It is read-only during
// extraction, so a single Registry can be shared by any number of concurrent
// extractions. Configuration changes require a new Registry.
type Registry struct {
	converters  map[reflect.Type]ConverterFunc
	dateFormats []string
	mapName     NameMapper
	maxDepth    int
}

type RegistryOpts struct {
	// Converters seeds the custom-converter table, keyed by exact target
	// type. Use RegisterConverter for the type-safe form.
	Converters map[reflect.Type]ConverterFunc
	// DateFormats are the time layouts tried in order for time.Time targets.
	// Defaults to DefaultDateFormats.
	DateFormats []string
	// NameMapper derives wire keys from field names. Defaults to
	// SnakeCaseNames.
	NameMapper NameMapper
	// MaxDepth bounds extraction recursion. Defaults to DefaultMaxDepth.
	MaxDepth int
}

func NewRegistry(opts RegistryOpts) *Registry {
	r := &Registry{
		converters:  make(map[reflect.Type]ConverterFunc),
		dateFormats: opts.DateFormats,
		mapName:     opts.NameMapper,
		maxDepth:    opts.MaxDepth,
	}

	for t, fn := range opts.Converters {
		r.converters[t] = fn
	}

	if len(r.dateFormats) == 0 {
		r.dateFormats = DefaultDateFormats
	}
	if r.mapName == nil {
		r.mapName = SnakeCaseNames
	}
	if r.maxDepth <= 0 {
		r.maxDepth = DefaultMaxDepth
	}

	return r
}

// RegisterConverter registers fn as the conversion for target type t,
// replacing any previous registration. It must not be called concurrently
// with extractions using this Registry.
func (r *Registry) RegisterConverter(t reflect.Type, fn ConverterFunc) {
	r.converters[t] = fn
}

// RegisterConverter is the type-safe form of [Registry.RegisterConverter].
func RegisterConverter[T any](r *Registry, fn func(node Node) (T, error)) {
	r.RegisterConverter(typeFor[T](), func(node Node) (any, error) {
		return fn(node)
	})
}

// lookupConverter returns the converter registered for t, if any.
func (r *Registry) lookupConverter(t reflect.Type) (ConverterFunc, bool) {
	fn, ok := r.converters[t]
	return fn, ok
}

// fieldNameFor returns the wire key for a declared field name.
func (r *Registry) fieldNameFor(fieldName string) string {
	return r.mapName(fieldName)
}

///////////////////////////////////////////////////////////////////////////////
// Name Mappers
///////////////////////////////////////////////////////////////////////////////

// SnakeCaseNames maps "FirstName" to "first_name" and "UserID" to "user_id".
// It is the default NameMapper.
func SnakeCaseNames(fieldName string) string {
	var b strings.Builder
	runes := []rune(fieldName)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CamelCaseNames maps "FirstName" to "firstName" and "URLPath" to "urlPath".
func CamelCaseNames(fieldName string) string {
	runes := []rune(fieldName)
	for i := 0; i < len(runes) && unicode.IsUpper(runes[i]); i++ {
		if i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			break
		}
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// IdentityNames maps every field name to itself.
func IdentityNames(fieldName string) string {
	return fieldName
}

///////////////////////////////////////////////////////////////////////////////
// Global Singleton
///////////////////////////////////////////////////////////////////////////////

var _defaultRegistry = NewRegistry(RegistryOpts{})

// DefaultRegistry returns the shared Registry used when a facade call is
// given a nil Registry: default date formats, snake_case names, no custom
// converters. Callers needing converters or other formats should construct
// their own Registry instead of mutating this one.
func DefaultRegistry() *Registry {
	return _defaultRegistry
}

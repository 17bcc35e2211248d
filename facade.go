package sift

import "reflect"

///////////////////////////////////////////////////////////////////////////////
// Readers
///////////////////////////////////////////////////////////////////////////////

// Reader is an explicitly supplied, type-specific conversion bound at the
// call site. It bypasses both the converter registry and structural
// dispatch. Readers return errors rather than panicking, so the *Optional
// and *Or variants isolate every failure by construction.
type Reader[T any] interface {
	Read(node Node) (T, error)
}

// ReaderFunc adapts a plain function into a Reader.
type ReaderFunc[T any] func(node Node) (T, error)

// Read implements Reader.
func (f ReaderFunc[T]) Read(node Node) (T, error) {
	return f(node)
}

///////////////////////////////////////////////////////////////////////////////
// Extraction Facade
///////////////////////////////////////////////////////////////////////////////

// typeFor returns the reflect.Type of T, including interface types.
func typeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Extract converts node into a T via type-directed dispatch, consulting reg
// for custom converters, date formats, field naming, and the recursion
// ceiling. A nil reg uses DefaultRegistry. Any impossibility — mismatched
// node shape, missing required field, unsupported type — surfaces as an
// error wrapping one of the base error kinds.
func Extract[T any](node Node, reg *Registry) (T, error) {
	var zero T
	if reg == nil {
		reg = DefaultRegistry()
	}

	value, err := extractValue(reg, node, typeFor[T](), "", 0)
	if err != nil {
		return zero, err
	}
	return value.Interface().(T), nil
}

// ExtractOptional is Extract with every failure converted to an absent
// result. It never returns an error, for any node and any T.
func ExtractOptional[T any](node Node, reg *Registry) (T, bool) {
	value, err := Extract[T](node, reg)
	if err != nil {
		var zero T
		return zero, false
	}
	return value, true
}

// ExtractOr is Extract with a fallback. The fallback is evaluated only when
// extraction fails.
func ExtractOr[T any](node Node, reg *Registry, fallback func() T) T {
	if value, ok := ExtractOptional[T](node, reg); ok {
		return value
	}
	return fallback()
}

// Read applies a call-site Reader to node directly, bypassing all dispatch.
// Whatever the reader returns is returned unchanged.
func Read[T any](node Node, reader Reader[T]) (T, error) {
	return reader.Read(node)
}

// ReadOptional applies a Reader and converts any failure it reports —
// extraction-related or not — to an absent result.
func ReadOptional[T any](node Node, reader Reader[T]) (T, bool) {
	value, err := reader.Read(node)
	if err != nil {
		var zero T
		return zero, false
	}
	return value, true
}

// ReadOr applies a Reader with a fallback evaluated only on failure.
func ReadOr[T any](node Node, reader Reader[T], fallback func() T) T {
	if value, ok := ReadOptional[T](node, reader); ok {
		return value
	}
	return fallback()
}

// ExtractWith applies an arbitrary transform to node. It is the escape hatch
// for ad hoc extraction logic that wants nested Extract calls inside f. f's
// error propagates unchanged; nothing is caught here.
func ExtractWith[A any](node Node, f func(node Node) (A, error)) (A, error) {
	return f(node)
}

// ExtractOptionalWith applies a transform that itself decides presence. No
// implicit failure conversion happens here; f owns the policy.
func ExtractOptionalWith[A any](node Node, f func(node Node) (A, bool)) (A, bool) {
	return f(node)
}

// ExtractListWith applies f to every element of an array node, in order,
// and collects the results. A node of any other kind yields an empty slice
// and no error: this lenient policy is deliberate and distinct from
// Extract[[]T], which fails with ErrTypeMismatch on a non-array node. An
// error from f propagates and aborts the traversal.
func ExtractListWith[A any](node Node, f func(node Node) (A, error)) ([]A, error) {
	if node.Kind() != KindArray {
		return []A{}, nil
	}

	out := make([]A, 0, len(node.arr))
	for _, item := range node.arr {
		value, err := f(item)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}

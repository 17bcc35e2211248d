package sift

import (
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// Type-Directed Extraction Engine
///////////////////////////////////////////////////////////////////////////////

// extractValue converts node into a value of type t, dispatching on the
// shape of t. Precedence per step: registered custom converter, then leaf
// types (Node, time.Time, uuid.UUID), then structural rules keyed on
// reflect.Kind. path is the diagnostic trail; depth the current recursion
// level.
func extractValue(reg *Registry, node Node, t reflect.Type, path string, depth int) (reflect.Value, error) {
	if depth > reg.maxDepth {
		return reflect.Value{}, newExtractError(ErrDepthExceeded, path, "nesting deeper than %d levels", reg.maxDepth)
	}

	if fn, ok := reg.lookupConverter(t); ok {
		return applyConverter(fn, node, t, path)
	}

	switch t {
	case NodeType:
		return reflect.ValueOf(node), nil
	case TimeType:
		return extractTime(reg, node, path)
	case UUIDType:
		return extractUUID(node, path)
	}

	switch t.Kind() {
	case reflect.String:
		if node.kind != KindString {
			return reflect.Value{}, newExtractError(ErrTypeMismatch, path, "expected string, got %s", node.kind)
		}
		return reflect.ValueOf(node.str).Convert(t), nil

	case reflect.Bool:
		if node.kind != KindBool {
			return reflect.Value{}, newExtractError(ErrTypeMismatch, path, "expected bool, got %s", node.kind)
		}
		return reflect.ValueOf(node.boo).Convert(t), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return extractInt(node, t, path)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return extractUint(node, t, path)

	case reflect.Float32, reflect.Float64:
		return extractFloat(node, t, path)

	case reflect.Pointer:
		// Pointer targets are the optional shape: null and absent map to a
		// nil pointer without error. A failure extracting the element
		// propagates; only presence is optional.
		if !node.Exists() || node.IsNull() {
			return reflect.Zero(t), nil
		}
		elem, err := extractValue(reg, node, t.Elem(), path, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil

	case reflect.Slice:
		return extractSlice(reg, node, t, path, depth)

	case reflect.Map:
		return extractMap(reg, node, t, path, depth)

	case reflect.Struct:
		return extractRecord(reg, node, t, path, depth)

	case reflect.Interface:
		if t.NumMethod() != 0 {
			break
		}
		native, err := node.native()
		if err != nil {
			return reflect.Value{}, newExtractError(ErrConversion, path, "%v", err)
		}
		out := reflect.New(t).Elem()
		if native != nil {
			out.Set(reflect.ValueOf(native))
		}
		return out, nil
	}

	return reflect.Value{}, newExtractError(ErrNoConverter, path, "cannot extract into %s", t)
}

// applyConverter runs a registered custom converter and checks that its
// result is assignable to the requested type.
func applyConverter(fn ConverterFunc, node Node, t reflect.Type, path string) (reflect.Value, error) {
	out, err := fn(node)
	if err != nil {
		return reflect.Value{}, newExtractError(ErrConversion, path, "converter for %s: %v", t, err)
	}

	v := reflect.ValueOf(out)
	if !v.IsValid() || !v.Type().AssignableTo(t) {
		return reflect.Value{}, newExtractError(ErrConversion, path, "converter for %s returned %T", t, out)
	}
	return v, nil
}

///////////////////////////////////////////////////////////////////////////////
// Leaves
///////////////////////////////////////////////////////////////////////////////

func extractTime(reg *Registry, node Node, path string) (reflect.Value, error) {
	if node.kind != KindString {
		return reflect.Value{}, newExtractError(ErrTypeMismatch, path, "expected date string, got %s", node.kind)
	}
	for _, format := range reg.dateFormats {
		if parsed, err := time.Parse(format, node.str); err == nil {
			return reflect.ValueOf(parsed), nil
		}
	}
	return reflect.Value{}, newExtractError(ErrConversion, path, "%q matches none of the configured date formats", node.str)
}

func extractUUID(node Node, path string) (reflect.Value, error) {
	if node.kind != KindString {
		return reflect.Value{}, newExtractError(ErrTypeMismatch, path, "expected UUID string, got %s", node.kind)
	}
	id, err := uuid.Parse(node.str)
	if err != nil {
		return reflect.Value{}, newExtractError(ErrConversion, path, "error converting value to UUID: %v", err)
	}
	return reflect.ValueOf(id), nil
}

// extractInt converts a number node to a signed integer type. The node's raw
// text must be integral: decimal or exponent notation is a conversion
// failure, not a truncation.
func extractInt(node Node, t reflect.Type, path string) (reflect.Value, error) {
	if node.kind != KindNumber {
		return reflect.Value{}, newExtractError(ErrTypeMismatch, path, "expected number, got %s", node.kind)
	}

	i, err := strconv.ParseInt(node.str, 10, 64)
	if err != nil {
		return reflect.Value{}, newExtractError(ErrConversion, path, "number %q is not an integer", node.str)
	}

	out := reflect.New(t).Elem()
	if out.OverflowInt(i) {
		return reflect.Value{}, newExtractError(ErrConversion, path, "value %d overflows %s", i, t)
	}
	out.SetInt(i)
	return out, nil
}

func extractUint(node Node, t reflect.Type, path string) (reflect.Value, error) {
	if node.kind != KindNumber {
		return reflect.Value{}, newExtractError(ErrTypeMismatch, path, "expected number, got %s", node.kind)
	}

	u, err := strconv.ParseUint(node.str, 10, 64)
	if err != nil {
		return reflect.Value{}, newExtractError(ErrConversion, path, "number %q is not an unsigned integer", node.str)
	}

	out := reflect.New(t).Elem()
	if out.OverflowUint(u) {
		return reflect.Value{}, newExtractError(ErrConversion, path, "value %d overflows %s", u, t)
	}
	out.SetUint(u)
	return out, nil
}

func extractFloat(node Node, t reflect.Type, path string) (reflect.Value, error) {
	if node.kind != KindNumber {
		return reflect.Value{}, newExtractError(ErrTypeMismatch, path, "expected number, got %s", node.kind)
	}

	f, err := strconv.ParseFloat(node.str, t.Bits())
	if err != nil {
		return reflect.Value{}, newExtractError(ErrConversion, path, "number %q does not fit %s", node.str, t)
	}

	out := reflect.New(t).Elem()
	out.SetFloat(f)
	return out, nil
}

///////////////////////////////////////////////////////////////////////////////
// Collections
///////////////////////////////////////////////////////////////////////////////

// extractSlice converts an array node into a slice, element by element in
// order. As a special case a []byte target accepts a string node and takes
// its raw bytes.
func extractSlice(reg *Registry, node Node, t reflect.Type, path string, depth int) (reflect.Value, error) {
	if t.Elem().Kind() == reflect.Uint8 && node.kind == KindString {
		return reflect.ValueOf([]byte(node.str)).Convert(t), nil
	}

	if node.kind != KindArray {
		return reflect.Value{}, newExtractError(ErrTypeMismatch, path, "expected array, got %s", node.kind)
	}

	out := reflect.MakeSlice(t, 0, len(node.arr))
	for i, item := range node.arr {
		elem, err := extractValue(reg, item, t.Elem(), indexPath(path, i), depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		out = reflect.Append(out, elem)
	}
	return out, nil
}

// extractMap handles the two map-shaped targets: map[K]struct{} is a set
// built from an array node, de-duplicated by key equality; map[string]T is
// built from an object node with duplicate keys resolved last-wins.
func extractMap(reg *Registry, node Node, t reflect.Type, path string, depth int) (reflect.Value, error) {
	if t.Elem() == emptyStructType {
		return extractSet(reg, node, t, path, depth)
	}

	if t.Key().Kind() != reflect.String {
		return reflect.Value{}, newExtractError(ErrNoConverter, path, "map keys must be strings, got %s", t.Key())
	}
	if node.kind != KindObject {
		return reflect.Value{}, newExtractError(ErrTypeMismatch, path, "expected object, got %s", node.kind)
	}

	out := reflect.MakeMapWithSize(t, len(node.obj))
	for _, m := range node.obj {
		elem, err := extractValue(reg, m.Value, t.Elem(), joinPath(path, m.Key), depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		// members are visited in order, so a repeated key overwrites the
		// earlier occurrence
		out.SetMapIndex(reflect.ValueOf(m.Key).Convert(t.Key()), elem)
	}
	return out, nil
}

func extractSet(reg *Registry, node Node, t reflect.Type, path string, depth int) (reflect.Value, error) {
	if node.kind != KindArray {
		return reflect.Value{}, newExtractError(ErrTypeMismatch, path, "expected array, got %s", node.kind)
	}

	out := reflect.MakeMapWithSize(t, len(node.arr))
	for i, item := range node.arr {
		elem, err := extractValue(reg, item, t.Key(), indexPath(path, i), depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		// an interface-keyed set can receive a non-hashable dynamic value,
		// e.g. a nested array landing as []any; SetMapIndex would panic
		if !elem.Comparable() {
			return reflect.Value{}, newExtractError(ErrConversion, indexPath(path, i), "element of type %T is not hashable", elem.Interface())
		}
		out.SetMapIndex(elem, reflect.ValueOf(struct{}{}))
	}
	return out, nil
}

///////////////////////////////////////////////////////////////////////////////
// Records
///////////////////////////////////////////////////////////////////////////////

// extractRecord converts an object node into a struct. Null and absent nodes
// are permitted when every field can be left at its default; a required
// field then fails with ErrMissingField. Unknown object keys are ignored.
// After population, a type implementing Validatable has its Validate method
// invoked; a validation failure fails the extraction.
func extractRecord(reg *Registry, node Node, t reflect.Type, path string, depth int) (reflect.Value, error) {
	if node.kind != KindObject && node.Exists() && !node.IsNull() {
		return reflect.Value{}, newExtractError(ErrTypeMismatch, path, "expected object, got %s", node.kind)
	}

	out := reflect.New(t)
	elem := out.Elem()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		spec, err := parseFieldTag(field, reg.fieldNameFor)
		if err != nil {
			return reflect.Value{}, newExtractError(ErrConversion, joinPath(path, field.Name), "%v", err)
		}
		if spec.Skip {
			continue
		}

		fieldPath := joinPath(path, spec.Name)
		member := node.Get(spec.Name)

		if !member.Exists() {
			switch {
			case spec.HasDefault:
				if err := applyLiteral(elem.Field(i), spec.Default, reg.dateFormats); err != nil {
					return reflect.Value{}, newExtractError(ErrConversion, fieldPath, "default literal: %v", err)
				}
			case spec.Optional || field.Type.Kind() == reflect.Pointer:
				// leave the zero value
			default:
				return reflect.Value{}, newExtractError(ErrMissingField, fieldPath, "object has no %q key", spec.Name)
			}
			continue
		}

		value, err := extractValue(reg, member, field.Type, fieldPath, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		elem.Field(i).Set(value)
	}

	if v, ok := out.Interface().(Validatable); ok {
		if err := v.Validate(); err != nil {
			return reflect.Value{}, newExtractError(ErrValidation, path, "%v", err)
		}
	}

	return elem, nil
}

package sift

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// Literal Conversion Helpers
///////////////////////////////////////////////////////////////////////////////

// applyLiteral sets a struct field from a string literal, converting to the
// field's type. It backs the `default` tag: the literal is whatever the tag
// carries, e.g. `default:"8080"` on an int field.
//
// Currently supports:
//   - string fields
//   - int/uint fields (with overflow checking)
//   - float fields (with overflow checking)
//   - bool fields (common textual representations)
//   - time.Time fields (tried against dateFormats in order)
//   - uuid.UUID fields
//   - []byte fields (raw bytes of the literal)
//   - pointer fields (allocated, then set recursively)
//   - encoding.TextUnmarshaler implementations
func applyLiteral(field reflect.Value, literal string, dateFormats []string) error {
	// time.Time and uuid.UUID implement TextUnmarshaler, but the configured
	// date formats must win for time values, so leaf struct types go first.
	if field.Kind() == reflect.Struct {
		return applyStructLiteral(field, literal, dateFormats)
	}

	if field.CanAddr() {
		if unmarshaler, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return unmarshaler.UnmarshalText([]byte(literal))
		}
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(literal)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return applyIntLiteral(field, literal)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return applyUintLiteral(field, literal)

	case reflect.Float32, reflect.Float64:
		return applyFloatLiteral(field, literal)

	case reflect.Bool:
		return applyBoolLiteral(field, literal)

	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.Uint8 {
			field.SetBytes([]byte(literal))
			return nil
		}
		return fmt.Errorf("unsupported slice type for literal: %s", field.Type())

	case reflect.Pointer:
		ptr := reflect.New(field.Type().Elem())
		if err := applyLiteral(ptr.Elem(), literal, dateFormats); err != nil {
			return err
		}
		field.Set(ptr)
		return nil

	default:
		return fmt.Errorf("unsupported field type for literal: %s", field.Type())
	}
}

// applyIntLiteral sets integer field values with overflow checking
func applyIntLiteral(field reflect.Value, literal string) error {
	intValue, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return fmt.Errorf("error converting literal to int: %w", err)
	}

	if field.OverflowInt(intValue) {
		return fmt.Errorf("value %d overflows %s", intValue, field.Type())
	}

	field.SetInt(intValue)
	return nil
}

// applyUintLiteral sets unsigned integer field values with overflow checking
func applyUintLiteral(field reflect.Value, literal string) error {
	uintValue, err := strconv.ParseUint(literal, 10, 64)
	if err != nil {
		return fmt.Errorf("error converting literal to uint: %w", err)
	}

	if field.OverflowUint(uintValue) {
		return fmt.Errorf("value %d overflows %s", uintValue, field.Type())
	}

	field.SetUint(uintValue)
	return nil
}

// applyFloatLiteral sets float field values with overflow checking
func applyFloatLiteral(field reflect.Value, literal string) error {
	floatValue, err := strconv.ParseFloat(literal, field.Type().Bits())
	if err != nil {
		return fmt.Errorf("error converting literal to float: %w", err)
	}

	field.SetFloat(floatValue)
	return nil
}

// applyBoolLiteral sets boolean field values. Tag literals tend to be written
// by hand, so besides strconv.ParseBool syntax the yes/no and on/off
// spellings are accepted in any casing.
func applyBoolLiteral(field reflect.Value, literal string) error {
	switch strings.ToLower(literal) {
	case "1", "true", "yes", "on":
		field.SetBool(true)
		return nil
	case "0", "false", "no", "off":
		field.SetBool(false)
		return nil
	}

	boolValue, err := strconv.ParseBool(literal)
	if err != nil {
		return fmt.Errorf("error converting literal to bool: %w", err)
	}
	field.SetBool(boolValue)
	return nil
}

// applyStructLiteral sets struct field values for the special leaf types
func applyStructLiteral(field reflect.Value, literal string, dateFormats []string) error {
	fieldType := field.Type()

	if fieldType == UUIDType {
		uuidValue, err := uuid.Parse(literal)
		if err != nil {
			return fmt.Errorf("error converting literal to UUID: %w", err)
		}
		field.Set(reflect.ValueOf(uuidValue))
		return nil
	}

	if fieldType == TimeType {
		var timeValue time.Time
		var err error
		for _, format := range dateFormats {
			if timeValue, err = time.Parse(format, literal); err == nil {
				field.Set(reflect.ValueOf(timeValue))
				return nil
			}
		}
		return fmt.Errorf("error converting literal to time.Time: %w", err)
	}

	if field.CanAddr() {
		if unmarshaler, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return unmarshaler.UnmarshalText([]byte(literal))
		}
	}

	return fmt.Errorf("unsupported struct type for literal: %s", fieldType)
}

package sift

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Base error types for tag parsing errors
var (
	ErrUnknownTagModifier = errors.New("unknown sift tag modifier")
)

// fieldTag is the decoded extraction directive for one struct field. It
// combines the `sift` tag (wire name and modifiers) with the `default` tag
// (a literal applied when the key is absent).
//
// Examples:
//
//	Name  string `sift:"full_name"`
//	Age   int    `sift:"age,omitempty"`
//	Kind  string `sift:",omitempty"`      // mapped name, optional
//	Port  int    `default:"8080"`
//	Debug bool   `sift:"-"`
type fieldTag struct {
	Name       string
	Optional   bool
	Skip       bool
	Default    string
	HasDefault bool
}

// parseFieldTag decodes the extraction directives of a struct field. mapName
// supplies the wire name when the `sift` tag does not override it.
func parseFieldTag(field reflect.StructField, mapName NameMapper) (fieldTag, error) {
	spec := fieldTag{Name: mapName(field.Name)}

	if raw, ok := field.Tag.Lookup(FieldTagKey); ok {
		if raw == SkipTagValue {
			spec.Skip = true
			return spec, nil
		}

		parts := strings.Split(raw, ",")
		if name := strings.TrimSpace(parts[0]); name != "" {
			spec.Name = name
		}

		for _, part := range parts[1:] {
			switch strings.TrimSpace(part) {
			case OmitEmptyTagModifier:
				spec.Optional = true
			case RequiredTagModifier:
				// required is the default; the modifier undoes an inherited
				// omitempty when tags are composed by code generation
				spec.Optional = false
			case "":
			default:
				return spec, fmt.Errorf("%w: %q on field %s", ErrUnknownTagModifier, part, field.Name)
			}
		}
	}

	if value, ok := field.Tag.Lookup(DefaultTagKey); ok {
		spec.Default = value
		spec.HasDefault = true
	}

	return spec, nil
}

// Package sift extracts statically-typed Go values out of generic JSON value
// trees, without hand-written per-type parsing code.
//
// A tree is represented by the immutable Node type: null, bool, number,
// string, array, or object. Trees are produced by an external parser; the
// Parse, ParseBytes, and ParseLenient adapters bind to one (ParseLenient
// repairs almost-JSON before parsing, for machine-generated input).
//
// Extraction is type-directed: you name a target type, the engine dispatches
// on its shape. One dispatch contract covers:
//   - primitive scalars (strings, bools, ints/uints with overflow checks,
//     floats, time.Time via configurable date formats, uuid.UUID)
//   - records: structs with named fields, recursively extracted, with
//     `sift` tags for wire names and optionality and `default` tags for
//     absent-key literals
//   - sequences ([]T), sets (map[T]struct{}, de-duplicated), and
//     string-keyed maps (map[string]T, duplicate keys last-wins)
//   - optionals (*T: null or absent becomes nil, never an error)
//   - custom conversions registered on a Registry, which take precedence
//     over all structural rules for their exact type
//
// Every extraction comes in three failure-handling flavors:
//   - Extract: strict, returns the first error encountered
//   - ExtractOptional: converts any failure into an absent result
//   - ExtractOr: falls back to a lazily-evaluated default on failure
//
// The same three flavors exist for call-site Readers (Read, ReadOptional,
// ReadOr), which bypass the engine entirely for a single type, and there are
// function-based escape hatches (ExtractWith, ExtractOptionalWith,
// ExtractListWith) for ad hoc logic.
//
// Strict errors wrap one of the base kinds (ErrTypeMismatch,
// ErrMissingField, ErrNoConverter, ErrConversion, ErrDepthExceeded,
// ErrValidation) and carry the path of the failing node, so callers can
// branch with errors.Is and report precisely.
//
// Configuration lives in a Registry: custom converters, date formats, the
// field-name mapper (snake_case by default), and the recursion-depth
// ceiling. A Registry is read-only once built, which makes every operation
// in this package safe for concurrent use over shared nodes and registries.
//
// Records may additionally implement Validatable; the engine calls
// Validate() after populating a struct and fails the extraction if the
// value's own invariants do not hold.
package sift

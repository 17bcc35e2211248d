package sift

import (
	"errors"
	"fmt"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

// Base error kinds for extraction failures. Every error returned by the
// strict extraction paths wraps exactly one of these, so callers can branch
// with errors.Is.
var (
	ErrTypeMismatch  = errors.New("node shape does not match the requested type")
	ErrMissingField  = errors.New("required field is missing")
	ErrNoConverter   = errors.New("no structural rule or registered converter for type")
	ErrConversion    = errors.New("value conversion failed")
	ErrDepthExceeded = errors.New("value tree exceeds the maximum extraction depth")
	ErrValidation    = errors.New("extracted value failed validation")
	ErrInvalidJSON   = errors.New("input is not valid JSON")
)

// ExtractError is the concrete error produced by the extraction engine. It
// wraps one of the base error kinds and carries the path of the failing node
// inside the tree, e.g. "user.pets[2].name".
type ExtractError struct {
	kind   error
	path   string
	reason string
}

func newExtractError(kind error, path string, format string, args ...any) *ExtractError {
	return &ExtractError{
		kind:   kind,
		path:   path,
		reason: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *ExtractError) Error() string {
	if e.path == "" {
		return fmt.Sprintf("%v: %s", e.kind, e.reason)
	}
	return fmt.Sprintf("%v: at %q: %s", e.kind, e.path, e.reason)
}

// Unwrap returns the base error kind, enabling errors.Is checks against
// ErrTypeMismatch, ErrMissingField, etc.
func (e *ExtractError) Unwrap() error {
	return e.kind
}

// Path returns the location of the failing node inside the value tree. It is
// "" when the failure happened at the root.
func (e *ExtractError) Path() string {
	return e.path
}

// joinPath appends a field key to a path trail.
func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// indexPath appends an array index to a path trail.
func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

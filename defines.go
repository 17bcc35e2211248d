package sift

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// constants for the struct field tags recognized by record extraction
const (
	FieldTagKey   = "sift"
	DefaultTagKey = "default"
	SkipTagValue  = "-"

	OmitEmptyTagModifier = "omitempty"
	RequiredTagModifier  = "required"
)

// DefaultMaxDepth is the recursion ceiling applied when a Registry does not
// set its own. It bounds extraction over pathologically nested trees.
const DefaultMaxDepth = 128

// DefaultDateFormats are the time layouts tried, in order, when extracting a
// string Node into time.Time and the Registry does not set its own.
var DefaultDateFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// reflect.TypeOf constants for type checks
var (
	TimeType = reflect.TypeOf(time.Time{})
	UUIDType = reflect.TypeOf(uuid.UUID{})
	NodeType = reflect.TypeOf(Node{})

	emptyStructType = reflect.TypeOf(struct{}{})
)

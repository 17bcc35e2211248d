package sift

import (
	"fmt"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// Node Kinds
///////////////////////////////////////////////////////////////////////////////

// Kind identifies which variant of the JSON value tree a Node holds.
type Kind int

const (
	// KindInvalid is the kind of the zero Node. It marks the absence of a
	// value, e.g. an object lookup that found no member. An invalid Node
	// never appears inside a tree produced by Parse.
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

///////////////////////////////////////////////////////////////////////////////
// Node
///////////////////////////////////////////////////////////////////////////////

// Member is a single (key, value) pair of an object Node. Object members are
// ordered and keys may repeat; lookup policy is last-occurrence-wins (see
// [Node.Get]).
type Member struct {
	Key   string
	Value Node
}

// Node is one value of a generic JSON tree: null, bool, number, string,
// array, or object. Nodes are immutable once constructed, which makes them
// safe to share across goroutines.
//
// Numbers keep their raw decimal text, so the integer/decimal distinction
// survives until an extraction decides how to interpret it.
//
// The zero Node is the "no value" marker: Exists() reports false. It is what
// Get returns for a missing key.
type Node struct {
	kind Kind
	str  string // string payload, or raw number text
	boo  bool
	arr  []Node
	obj  []Member
}

// Null returns the JSON null Node.
func Null() Node {
	return Node{kind: KindNull}
}

// Bool returns a boolean Node.
func Bool(b bool) Node {
	return Node{kind: KindBool, boo: b}
}

// Number returns a number Node from its raw decimal text, e.g. "32" or
// "-1.5e3". The text is not validated here; malformed text surfaces as a
// conversion failure at extraction time.
func Number(raw string) Node {
	return Node{kind: KindNumber, str: raw}
}

// Int returns a number Node holding an integer value.
func Int(i int64) Node {
	return Node{kind: KindNumber, str: strconv.FormatInt(i, 10)}
}

// Float returns a number Node holding a decimal value.
func Float(f float64) Node {
	return Node{kind: KindNumber, str: strconv.FormatFloat(f, 'g', -1, 64)}
}

// String returns a string Node.
func String(s string) Node {
	return Node{kind: KindString, str: s}
}

// Array returns an array Node with the given elements, in order.
func Array(items ...Node) Node {
	return Node{kind: KindArray, arr: items}
}

// Object returns an object Node with the given members, in order. Duplicate
// keys are preserved.
func Object(members ...Member) Node {
	return Node{kind: KindObject, obj: members}
}

///////////////////////////////////////////////////////////////////////////////
// Accessors
///////////////////////////////////////////////////////////////////////////////

// Kind returns which variant this Node holds.
func (n Node) Kind() Kind {
	return n.kind
}

// Exists reports whether this Node holds any value at all. It is false only
// for the zero Node.
func (n Node) Exists() bool {
	return n.kind != KindInvalid
}

// IsNull reports whether this Node is the JSON null value.
func (n Node) IsNull() bool {
	return n.kind == KindNull
}

// Str returns the string payload of a string Node, or "" for any other kind.
func (n Node) Str() string {
	if n.kind != KindString {
		return ""
	}
	return n.str
}

// Boolean returns the payload of a bool Node, or false for any other kind.
func (n Node) Boolean() bool {
	return n.kind == KindBool && n.boo
}

// RawNumber returns the raw decimal text of a number Node, or "" for any
// other kind.
func (n Node) RawNumber() string {
	if n.kind != KindNumber {
		return ""
	}
	return n.str
}

// IntValue converts a number Node to int64. It fails if the Node is not a
// number or the raw text is not an integer.
func (n Node) IntValue() (int64, error) {
	if n.kind != KindNumber {
		return 0, newExtractError(ErrTypeMismatch, "", "expected number, got %s", n.kind)
	}
	i, err := strconv.ParseInt(n.str, 10, 64)
	if err != nil {
		return 0, newExtractError(ErrConversion, "", "number %q is not an int64", n.str)
	}
	return i, nil
}

// FloatValue converts a number Node to float64. It fails if the Node is not
// a number or the raw text is malformed.
func (n Node) FloatValue() (float64, error) {
	if n.kind != KindNumber {
		return 0, newExtractError(ErrTypeMismatch, "", "expected number, got %s", n.kind)
	}
	f, err := strconv.ParseFloat(n.str, 64)
	if err != nil {
		return 0, newExtractError(ErrConversion, "", "number %q is not a float64", n.str)
	}
	return f, nil
}

// Items returns the elements of an array Node in order, or nil for any other
// kind. The returned slice is shared; callers must not modify it.
func (n Node) Items() []Node {
	if n.kind != KindArray {
		return nil
	}
	return n.arr
}

// Members returns the (key, value) pairs of an object Node in order,
// duplicates included, or nil for any other kind. The returned slice is
// shared; callers must not modify it.
func (n Node) Members() []Member {
	if n.kind != KindObject {
		return nil
	}
	return n.obj
}

// Len returns the element count of an array Node or the member count of an
// object Node (duplicates included), and 0 for every other kind.
func (n Node) Len() int {
	switch n.kind {
	case KindArray:
		return len(n.arr)
	case KindObject:
		return len(n.obj)
	default:
		return 0
	}
}

// Get returns the value of the last member with the given key of an object
// Node. It returns the zero Node (Exists() == false) when the key is absent
// or this Node is not an object.
func (n Node) Get(key string) Node {
	if n.kind != KindObject {
		return Node{}
	}
	for i := len(n.obj) - 1; i >= 0; i-- {
		if n.obj[i].Key == key {
			return n.obj[i].Value
		}
	}
	return Node{}
}

// Index returns the i-th element of an array Node, or the zero Node when out
// of range or this Node is not an array.
func (n Node) Index(i int) Node {
	if n.kind != KindArray || i < 0 || i >= len(n.arr) {
		return Node{}
	}
	return n.arr[i]
}

// native returns the Node as plain Go data: nil, bool, int64 or float64,
// string, []any, or map[string]any (duplicate keys last-wins). Used when the
// extraction target is the empty interface. Number text that fits neither
// int64 nor float64 is a conversion failure.
func (n Node) native() (any, error) {
	switch n.kind {
	case KindBool:
		return n.boo, nil
	case KindNumber:
		if i, err := strconv.ParseInt(n.str, 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(n.str, 64)
		if err != nil {
			return nil, fmt.Errorf("number %q is not a float64", n.str)
		}
		return f, nil
	case KindString:
		return n.str, nil
	case KindArray:
		out := make([]any, len(n.arr))
		for i, item := range n.arr {
			value, err := item.native()
			if err != nil {
				return nil, err
			}
			out[i] = value
		}
		return out, nil
	case KindObject:
		out := make(map[string]any, len(n.obj))
		for _, m := range n.obj {
			value, err := m.Value.native()
			if err != nil {
				return nil, err
			}
			out[m.Key] = value
		}
		return out, nil
	default:
		return nil, nil
	}
}

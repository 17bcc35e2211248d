package sift

import (
	"fmt"

	"github.com/kaptinlin/jsonrepair"
	"github.com/tidwall/gjson"
)

///////////////////////////////////////////////////////////////////////////////
// Parser Adapters
///////////////////////////////////////////////////////////////////////////////

// Parse builds a value tree from JSON text. It returns ErrInvalidJSON when
// the input is not well-formed.
func Parse(json string) (Node, error) {
	if !gjson.Valid(json) {
		return Node{}, newExtractError(ErrInvalidJSON, "", "malformed input of %d bytes", len(json))
	}
	return fromGJSON(gjson.Parse(json)), nil
}

// ParseBytes is Parse for a byte slice.
func ParseBytes(json []byte) (Node, error) {
	if !gjson.ValidBytes(json) {
		return Node{}, newExtractError(ErrInvalidJSON, "", "malformed input of %d bytes", len(json))
	}
	return fromGJSON(gjson.ParseBytes(json)), nil
}

// ParseLenient builds a value tree from almost-JSON: single-quoted strings,
// unquoted keys, trailing commas, and similar damage are repaired before
// parsing. Well-formed input takes the strict path unchanged. Use this for
// machine-generated output that cannot be trusted to be valid JSON.
func ParseLenient(json string) (Node, error) {
	if gjson.Valid(json) {
		return fromGJSON(gjson.Parse(json)), nil
	}

	repaired, err := jsonrepair.JSONRepair(json)
	if err != nil {
		return Node{}, newExtractError(ErrInvalidJSON, "", "input could not be repaired: %v", err)
	}
	return Parse(repaired)
}

// MustParse is Parse for inputs known to be valid, e.g. literals in tests.
// It panics on malformed input.
func MustParse(json string) Node {
	node, err := Parse(json)
	if err != nil {
		panic(fmt.Sprintf("sift: MustParse: %v", err))
	}
	return node
}

// fromGJSON converts a parsed gjson value into a Node tree. Object member
// order and duplicate keys are preserved as gjson reports them.
func fromGJSON(r gjson.Result) Node {
	switch r.Type {
	case gjson.Null:
		return Null()
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.Number:
		return Number(r.Raw)
	case gjson.String:
		return String(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			var items []Node
			r.ForEach(func(_, item gjson.Result) bool {
				items = append(items, fromGJSON(item))
				return true
			})
			return Array(items...)
		}
		var members []Member
		r.ForEach(func(key, value gjson.Result) bool {
			members = append(members, Member{Key: key.Str, Value: fromGJSON(value)})
			return true
		})
		return Object(members...)
	default:
		return Node{}
	}
}

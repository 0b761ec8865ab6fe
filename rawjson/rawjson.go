// Package rawjson provides order-preserving primitives for working with raw
// JSON fragments: reading object members in document order, locating single
// members, compacting fragments, and building objects with deterministic
// member order.
//
// The package deliberately stays on json.RawMessage throughout so callers can
// carry unrecognized payloads through a read/write cycle without interpreting
// them.
package rawjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// ErrNotObject is returned when a fragment expected to be a JSON object is
// some other JSON value.
var ErrNotObject = errors.New("fragment is not a JSON object")

// Member is one name/value entry of a JSON object, in document order.
type Member struct {
	Name  string
	Value json.RawMessage
}

// Members returns the members of a JSON object in document order.
//
// Duplicate names are preserved as separate entries; decoding into a Go map
// would lose both the order and the duplicates, so the object is scanned at
// the token level instead.
func Members(raw json.RawMessage) ([]Member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading object open: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	var members []Member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading member name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected member name token %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("reading member %q: %w", name, err)
		}
		members = append(members, Member{Name: name, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading object close: %w", err)
	}

	return members, nil
}

// Find returns the value of the first member with the given name.
// The second return value reports whether the member exists.
func Find(raw json.RawMessage, name string) (json.RawMessage, bool, error) {
	members, err := Members(raw)
	if err != nil {
		return nil, false, err
	}
	for _, m := range members {
		if m.Name == name {
			return m.Value, true, nil
		}
	}
	return nil, false, nil
}

// IsObject reports whether raw is a JSON object.
func IsObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(raw)
}

// Compact returns raw with insignificant whitespace removed.
// Invalid JSON is rejected.
func Compact(raw json.RawMessage) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

// Equal reports whether a and b encode the same JSON value, ignoring member
// order and formatting. Invalid fragments are never equal to anything.
func Equal(a, b json.RawMessage) bool {
	var av, bv any
	if err := json.Unmarshal(a, &av); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bv); err != nil {
		return false
	}
	return reflect.DeepEqual(av, bv)
}

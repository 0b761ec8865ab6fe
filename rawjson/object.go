package rawjson

import (
	"bytes"
	"encoding/json"
)

// Object builds a JSON object fragment whose members appear in insertion
// order. The zero value is an empty object ready for use.
//
// Object performs no duplicate detection; callers that need unique member
// names enforce that themselves.
type Object struct {
	buf bytes.Buffer
	n   int
}

// Put appends a member with a pre-serialized value.
// The value must be a valid JSON fragment.
func (o *Object) Put(name string, value json.RawMessage) {
	if o.n > 0 {
		o.buf.WriteByte(',')
	}
	encoded, err := json.Marshal(name)
	if err != nil {
		// json.Marshal of a string cannot fail
		panic(err)
	}
	o.buf.Write(encoded)
	o.buf.WriteByte(':')
	o.buf.Write(value)
	o.n++
}

// PutValue marshals v and appends it as a member.
func (o *Object) PutValue(name string, v any) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return err
	}
	o.Put(name, encoded)
	return nil
}

// Len returns the number of members added so far.
func (o *Object) Len() int {
	return o.n
}

// Raw returns the completed object fragment. The Object remains usable;
// later Put calls extend the same object.
func (o *Object) Raw() json.RawMessage {
	out := make([]byte, 0, o.buf.Len()+2)
	out = append(out, '{')
	out = append(out, o.buf.Bytes()...)
	out = append(out, '}')
	return json.RawMessage(out)
}

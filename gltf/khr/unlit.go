package khr

import (
	"encoding/json"
	"fmt"

	"github.com/c360/gltfkit/errors"
	"github.com/c360/gltfkit/gltf"
	"github.com/c360/gltfkit/rawjson"
)

// Unlit is the KHR_materials_unlit material extension. It carries no fields:
// its presence alone marks the material as unlit.
type Unlit struct {
	gltf.Property
}

// NewUnlit returns a new Unlit marker.
func NewUnlit() *Unlit {
	return &Unlit{}
}

// Kind returns the extension's variant tag.
func (*Unlit) Kind() gltf.Kind {
	return gltf.KindUnlit
}

// Clone returns an independent deep copy.
func (u *Unlit) Clone() gltf.Extension {
	return &Unlit{Property: u.CloneProperty()}
}

// Equal reports whether other is also an Unlit. Presence is the whole
// payload, so any two Unlit instances are equal.
func (u *Unlit) Equal(other gltf.Extension) bool {
	_, ok := other.(*Unlit)
	return ok
}

func encodeUnlit(e gltf.Extension, doc *gltf.Document, s *gltf.Serializer) (json.RawMessage, error) {
	unlit, ok := e.(*Unlit)
	if !ok {
		return nil, errors.Wrap(
			fmt.Errorf("%w: expected Unlit, got %s", errors.ErrInvalidRegistration, e.Kind()),
			"Unlit", "Encode", "variant check")
	}

	var obj rawjson.Object
	if err := gltf.SerializeProperty(doc, unlit, &obj, s); err != nil {
		return nil, err
	}
	return obj.Raw(), nil
}

func decodeUnlit(raw json.RawMessage, d *gltf.Deserializer) (gltf.Extension, error) {
	unlit := NewUnlit()
	if err := gltf.ParseProperty(raw, unlit, d); err != nil {
		return nil, err
	}
	return unlit, nil
}

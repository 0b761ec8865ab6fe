package khr

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/c360/gltfkit/errors"
	"github.com/c360/gltfkit/gltf"
	"github.com/c360/gltfkit/rawjson"
)

// DracoMeshCompression is the KHR_draco_mesh_compression mesh-primitive
// extension: it points at the buffer view holding the compressed payload and
// maps attribute semantics to attribute ids inside that payload.
type DracoMeshCompression struct {
	gltf.Property

	// BufferViewID identifies the buffer view holding the compressed data in
	// Document.BufferViews. Empty means unset; the reference is emitted and
	// resolved only when set.
	BufferViewID string
	// Attributes maps attribute semantic names (such as "POSITION") to
	// attribute ids in the compressed payload.
	Attributes map[string]int
}

// NewDracoMeshCompression returns an instance with an empty attribute map.
func NewDracoMeshCompression() *DracoMeshCompression {
	return &DracoMeshCompression{
		Attributes: make(map[string]int),
	}
}

// Kind returns the extension's variant tag.
func (*DracoMeshCompression) Kind() gltf.Kind {
	return gltf.KindDracoMeshCompression
}

// Clone returns an independent deep copy.
func (dm *DracoMeshCompression) Clone() gltf.Extension {
	return &DracoMeshCompression{
		Property:     dm.CloneProperty(),
		BufferViewID: dm.BufferViewID,
		Attributes:   maps.Clone(dm.Attributes),
	}
}

// Equal reports whether other is a DracoMeshCompression with the same buffer
// view reference, the same attribute mapping, and equal extension state.
func (dm *DracoMeshCompression) Equal(other gltf.Extension) bool {
	o, ok := other.(*DracoMeshCompression)
	return ok &&
		dm.EqualProperty(&o.Property) &&
		dm.BufferViewID == o.BufferViewID &&
		maps.Equal(dm.Attributes, o.Attributes)
}

func encodeDracoMeshCompression(e gltf.Extension, doc *gltf.Document, s *gltf.Serializer) (json.RawMessage, error) {
	draco, ok := e.(*DracoMeshCompression)
	if !ok {
		return nil, errors.Wrap(
			fmt.Errorf("%w: expected DracoMeshCompression, got %s", errors.ErrInvalidRegistration, e.Kind()),
			"DracoMeshCompression", "Encode", "variant check")
	}

	var obj rawjson.Object

	if draco.BufferViewID != "" {
		pos, ok := doc.BufferViews.Index(draco.BufferViewID)
		if !ok {
			return nil, errors.WrapReference(
				fmt.Errorf("%w: buffer view %q", errors.ErrBrokenReference, draco.BufferViewID),
				"DracoMeshCompression", "Encode", "buffer view resolution")
		}
		if err := obj.PutValue("bufferView", pos); err != nil {
			return nil, err
		}
	}

	// The attributes object is always emitted, even when empty.
	var attributes rawjson.Object
	attrNames := make([]string, 0, len(draco.Attributes))
	for name := range draco.Attributes {
		attrNames = append(attrNames, name)
	}
	slices.Sort(attrNames)
	for _, name := range attrNames {
		if err := attributes.PutValue(name, draco.Attributes[name]); err != nil {
			return nil, err
		}
	}
	obj.Put("attributes", attributes.Raw())

	if err := gltf.SerializeProperty(doc, draco, &obj, s); err != nil {
		return nil, err
	}

	return obj.Raw(), nil
}

func decodeDracoMeshCompression(raw json.RawMessage, d *gltf.Deserializer) (gltf.Extension, error) {
	draco := NewDracoMeshCompression()

	members, err := rawjson.Members(raw)
	if err != nil {
		return nil, errors.WrapSchema(err, "DracoMeshCompression", "Decode", "object scan")
	}

	for _, m := range members {
		switch m.Name {
		case "bufferView":
			var pos int
			if err := json.Unmarshal(m.Value, &pos); err != nil {
				return nil, errors.WrapSchema(err, "DracoMeshCompression", "Decode", "bufferView parsing")
			}
			if pos < 0 {
				return nil, errors.WrapSchema(
					fmt.Errorf("%w: negative buffer view index %d", errors.ErrSchemaViolation, pos),
					"DracoMeshCompression", "Decode", "bufferView validation")
			}
			draco.BufferViewID = strconv.Itoa(pos)

		case "attributes":
			if !rawjson.IsObject(m.Value) {
				return nil, errors.WrapSchema(
					fmt.Errorf("%w: attributes member is not an object", errors.ErrSchemaViolation),
					"DracoMeshCompression", "Decode", "attributes validation")
			}

			attributes, err := rawjson.Members(m.Value)
			if err != nil {
				return nil, errors.WrapSchema(err, "DracoMeshCompression", "Decode", "attributes scan")
			}
			for _, attribute := range attributes {
				var id int
				if err := json.Unmarshal(attribute.Value, &id); err != nil {
					return nil, errors.WrapSchema(
						fmt.Errorf("%w: attribute %q is not an integer", errors.ErrSchemaViolation, attribute.Name),
						"DracoMeshCompression", "Decode", "attribute parsing")
				}
				if id < 0 {
					return nil, errors.WrapSchema(
						fmt.Errorf("%w: attribute %q has negative id %d", errors.ErrSchemaViolation, attribute.Name, id),
						"DracoMeshCompression", "Decode", "attribute validation")
				}
				if _, exists := draco.Attributes[attribute.Name]; !exists {
					draco.Attributes[attribute.Name] = id
				}
			}
		}
	}

	if err := gltf.ParseProperty(raw, draco, d); err != nil {
		return nil, err
	}

	return draco, nil
}

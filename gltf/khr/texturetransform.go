package khr

import (
	"encoding/json"
	"fmt"

	"github.com/c360/gltfkit/errors"
	"github.com/c360/gltfkit/gltf"
	"github.com/c360/gltfkit/rawjson"
)

// Per-field defaults for TextureTransform; default-valued fields are elided
// on output.
var (
	defaultOffset = gltf.Vector2{X: 0, Y: 0}
	defaultScale  = gltf.Vector2{X: 1, Y: 1}
)

// TextureTransform is the KHR_texture_transform texture-reference extension:
// an offset/rotation/scale applied to texture coordinates, with an optional
// texture-coordinate-set override.
type TextureTransform struct {
	gltf.Property

	Offset   gltf.Vector2
	Rotation float32
	Scale    gltf.Vector2
	TexCoord int
}

// NewTextureTransform returns an instance with every field at its default
// value.
func NewTextureTransform() *TextureTransform {
	return &TextureTransform{
		Offset: defaultOffset,
		Scale:  defaultScale,
	}
}

// Kind returns the extension's variant tag.
func (*TextureTransform) Kind() gltf.Kind {
	return gltf.KindTextureTransform
}

// Clone returns an independent deep copy.
func (t *TextureTransform) Clone() gltf.Extension {
	return &TextureTransform{
		Property: t.CloneProperty(),
		Offset:   t.Offset,
		Rotation: t.Rotation,
		Scale:    t.Scale,
		TexCoord: t.TexCoord,
	}
}

// Equal reports whether other is a TextureTransform with equal field values
// and extension state.
func (t *TextureTransform) Equal(other gltf.Extension) bool {
	o, ok := other.(*TextureTransform)
	return ok &&
		t.EqualProperty(&o.Property) &&
		t.Offset == o.Offset &&
		t.Rotation == o.Rotation &&
		t.Scale == o.Scale &&
		t.TexCoord == o.TexCoord
}

func encodeTextureTransform(e gltf.Extension, doc *gltf.Document, s *gltf.Serializer) (json.RawMessage, error) {
	transform, ok := e.(*TextureTransform)
	if !ok {
		return nil, errors.Wrap(
			fmt.Errorf("%w: expected TextureTransform, got %s", errors.ErrInvalidRegistration, e.Kind()),
			"TextureTransform", "Encode", "variant check")
	}

	var obj rawjson.Object

	if transform.Offset != defaultOffset {
		if err := obj.PutValue("offset", transform.Offset.Slice()); err != nil {
			return nil, err
		}
	}

	if transform.Rotation != 0 {
		if err := obj.PutValue("rotation", transform.Rotation); err != nil {
			return nil, err
		}
	}

	if transform.Scale != defaultScale {
		if err := obj.PutValue("scale", transform.Scale.Slice()); err != nil {
			return nil, err
		}
	}

	if transform.TexCoord != 0 {
		if err := obj.PutValue("texCoord", transform.TexCoord); err != nil {
			return nil, err
		}
	}

	if err := gltf.SerializeProperty(doc, transform, &obj, s); err != nil {
		return nil, err
	}

	return obj.Raw(), nil
}

func decodeTextureTransform(raw json.RawMessage, d *gltf.Deserializer) (gltf.Extension, error) {
	transform := NewTextureTransform()

	members, err := rawjson.Members(raw)
	if err != nil {
		return nil, errors.WrapSchema(err, "TextureTransform", "Decode", "object scan")
	}

	for _, m := range members {
		switch m.Name {
		case "offset":
			offset, err := decodeVector2(m.Value)
			if err != nil {
				return nil, errors.WrapSchema(err, "TextureTransform", "Decode", "offset parsing")
			}
			transform.Offset = offset

		case "rotation":
			var rotation float32
			if err := json.Unmarshal(m.Value, &rotation); err != nil {
				return nil, errors.WrapSchema(err, "TextureTransform", "Decode", "rotation parsing")
			}
			transform.Rotation = rotation

		case "scale":
			scale, err := decodeVector2(m.Value)
			if err != nil {
				return nil, errors.WrapSchema(err, "TextureTransform", "Decode", "scale parsing")
			}
			transform.Scale = scale

		case "texCoord":
			var texCoord int
			if err := json.Unmarshal(m.Value, &texCoord); err != nil {
				return nil, errors.WrapSchema(err, "TextureTransform", "Decode", "texCoord parsing")
			}
			if texCoord < 0 {
				return nil, errors.WrapSchema(
					fmt.Errorf("%w: negative texCoord %d", errors.ErrSchemaViolation, texCoord),
					"TextureTransform", "Decode", "texCoord validation")
			}
			transform.TexCoord = texCoord
		}
	}

	if err := gltf.ParseProperty(raw, transform, d); err != nil {
		return nil, err
	}

	return transform, nil
}

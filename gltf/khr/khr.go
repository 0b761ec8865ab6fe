// Package khr implements the Khronos extension codecs known to this library
// and the registry tables that bind them to their owner kinds.
package khr

import (
	"encoding/json"
	"fmt"

	"github.com/c360/gltfkit/errors"
	"github.com/c360/gltfkit/gltf"
)

// Registered extension names. These are the identifiers that appear under an
// entity's "extensions" member and in a document's extensionsUsed list.
const (
	PBRSpecularGlossinessName = "KHR_materials_pbrSpecularGlossiness"
	UnlitName                 = "KHR_materials_unlit"
	DracoMeshCompressionName  = "KHR_draco_mesh_compression"
	TextureTransformName      = "KHR_texture_transform"
)

// NewSerializer builds the serializer registry covering all KHR extensions
// known to this library.
func NewSerializer() *gltf.Serializer {
	return gltf.MustNewSerializer(
		gltf.SerializerEntry{
			Name:   PBRSpecularGlossinessName,
			Kind:   gltf.KindPBRSpecularGlossiness,
			Owner:  gltf.OwnerType[gltf.Material](),
			Encode: encodePBRSpecularGlossiness,
		},
		gltf.SerializerEntry{
			Name:   UnlitName,
			Kind:   gltf.KindUnlit,
			Owner:  gltf.OwnerType[gltf.Material](),
			Encode: encodeUnlit,
		},
		gltf.SerializerEntry{
			Name:   DracoMeshCompressionName,
			Kind:   gltf.KindDracoMeshCompression,
			Owner:  gltf.OwnerType[gltf.MeshPrimitive](),
			Encode: encodeDracoMeshCompression,
		},
		gltf.SerializerEntry{
			Name:   TextureTransformName,
			Kind:   gltf.KindTextureTransform,
			Owner:  gltf.OwnerType[gltf.TextureInfo](),
			Encode: encodeTextureTransform,
		},
	)
}

// NewDeserializer builds the deserializer registry covering all KHR
// extensions known to this library.
func NewDeserializer() *gltf.Deserializer {
	return gltf.MustNewDeserializer(
		gltf.DeserializerEntry{
			Name:   PBRSpecularGlossinessName,
			Owner:  gltf.OwnerType[gltf.Material](),
			Decode: decodePBRSpecularGlossiness,
		},
		gltf.DeserializerEntry{
			Name:   UnlitName,
			Owner:  gltf.OwnerType[gltf.Material](),
			Decode: decodeUnlit,
		},
		gltf.DeserializerEntry{
			Name:   DracoMeshCompressionName,
			Owner:  gltf.OwnerType[gltf.MeshPrimitive](),
			Decode: decodeDracoMeshCompression,
		},
		gltf.DeserializerEntry{
			Name:   TextureTransformName,
			Owner:  gltf.OwnerType[gltf.TextureInfo](),
			Decode: decodeTextureTransform,
		},
	)
}

// decodeColor3 reads a three-component color array.
func decodeColor3(raw json.RawMessage) (gltf.Color3, error) {
	var values []float32
	if err := json.Unmarshal(raw, &values); err != nil {
		return gltf.Color3{}, err
	}
	if len(values) != 3 {
		return gltf.Color3{}, fmt.Errorf("%w: expected 3 components, got %d",
			errors.ErrSchemaViolation, len(values))
	}
	return gltf.Color3{R: values[0], G: values[1], B: values[2]}, nil
}

// decodeColor4 reads a four-component color array.
func decodeColor4(raw json.RawMessage) (gltf.Color4, error) {
	var values []float32
	if err := json.Unmarshal(raw, &values); err != nil {
		return gltf.Color4{}, err
	}
	if len(values) != 4 {
		return gltf.Color4{}, fmt.Errorf("%w: expected 4 components, got %d",
			errors.ErrSchemaViolation, len(values))
	}
	return gltf.Color4{R: values[0], G: values[1], B: values[2], A: values[3]}, nil
}

// decodeVector2 reads a two-component vector array.
func decodeVector2(raw json.RawMessage) (gltf.Vector2, error) {
	var values []float32
	if err := json.Unmarshal(raw, &values); err != nil {
		return gltf.Vector2{}, err
	}
	if len(values) != 2 {
		return gltf.Vector2{}, fmt.Errorf("%w: expected 2 components, got %d",
			errors.ErrSchemaViolation, len(values))
	}
	return gltf.Vector2{X: values[0], Y: values[1]}, nil
}

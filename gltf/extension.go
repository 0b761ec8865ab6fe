package gltf

import "encoding/json"

// Kind identifies one of the typed extension variants known to this library.
// The set is closed: equality and cloning dispatch on the Kind tag instead of
// runtime type inspection, and each entity holds at most one extension per
// Kind.
type Kind int

const (
	// KindPBRSpecularGlossiness is KHR_materials_pbrSpecularGlossiness.
	KindPBRSpecularGlossiness Kind = iota
	// KindUnlit is KHR_materials_unlit.
	KindUnlit
	// KindDracoMeshCompression is KHR_draco_mesh_compression.
	KindDracoMeshCompression
	// KindTextureTransform is KHR_texture_transform.
	KindTextureTransform
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindPBRSpecularGlossiness:
		return "pbr-specular-glossiness"
	case KindUnlit:
		return "unlit"
	case KindDracoMeshCompression:
		return "draco-mesh-compression"
	case KindTextureTransform:
		return "texture-transform"
	default:
		return "unknown"
	}
}

// Extension is a typed, named payload attachable to a specific kind of
// document entity. Implementations have value semantics: Clone returns an
// independent deep copy, and Equal compares the Kind tag first and then all
// fields by value.
type Extension interface {
	// Kind returns the variant tag of this extension.
	Kind() Kind
	// Clone returns an independent deep copy of the same variant.
	Clone() Extension
	// Equal reports whether other is the same variant with equal field
	// values. It never reports partial or approximate equality.
	Equal(other Extension) bool
}

// ExtensionPair couples an extension name with the canonical serialized form
// of one extension instance. It is the intermediate carried between the
// parse/serialize pipelines and the registries.
type ExtensionPair struct {
	Name  string
	Value json.RawMessage
}

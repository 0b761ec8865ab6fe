// Package gltfkit provides the extension mechanism of a glTF reader/writer:
// typed codecs for known extensions, lossless passthrough for unknown ones,
// and the registries that bind codecs to the entity kinds they may appear on.
//
// # Philosophy: Typed Where Known, Lossless Where Not
//
// glTF documents attach extension payloads to individual entities (materials,
// mesh primitives, texture references). A reader rarely knows every extension
// a document carries, so gltfkit splits the world in two:
//
//   - Registered extensions: a codec is known, so the payload becomes a typed
//     value with defaults, equality, and cloning.
//   - Unregistered extensions: no codec is known, so the payload is carried
//     as opaque raw text and written back unchanged.
//
// Forward compatibility is the point of the second path: a document full of
// extensions this library has never heard of still round-trips without loss.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│         Host document I/O           │  walks the document tree,
//	│      (reader/writer, not here)      │  calls the pipelines per entity
//	└─────────────────────────────────────┘
//	           ↓ per extensible entity
//	┌─────────────────────────────────────┐
//	│        gltf parse/serialize         │  splits "extensions"/"extras",
//	│   ParseProperty, SerializeProperty  │  typed dispatch vs passthrough
//	└─────────────────────────────────────┘
//	           ↓ (name, owner kind)
//	┌─────────────────────────────────────┐
//	│     gltf.Deserializer/Serializer    │  immutable codec registries,
//	│        built once at startup        │  shared across operations
//	└─────────────────────────────────────┘
//	           ↓ codec
//	┌─────────────────────────────────────┐
//	│             gltf/khr                │  PBRSpecularGlossiness, Unlit,
//	│                                     │  DracoMeshCompression,
//	│                                     │  TextureTransform
//	└─────────────────────────────────────┘
//
// Dispatch is keyed by the pair (extension name, owner kind), never by the
// JSON alone: KHR_texture_transform on a texture reference is a typed
// payload, while the same name on a material would be a dispatch failure
// rather than a silent passthrough.
//
// # Packages
//
//   - gltf: core data model (Property, TextureInfo, Document), registries,
//     and the parse/serialize pipelines
//   - gltf/khr: the concrete KHR extension codecs and their registry tables
//   - rawjson: order-preserving raw JSON primitives used by both pipelines
//   - errors: classified errors (missing member, schema violation,
//     referential integrity, no handler)
//
// # Quick Start
//
//	d := khr.NewDeserializer()
//
//	material := &gltf.Material{}
//	if err := gltf.ParseProperty(rawMaterial, material, d); err != nil {
//	    // classified via errors.Classify(err)
//	}
//
//	if ext, ok := material.Extension(gltf.KindUnlit); ok {
//	    _ = ext // typed *khr.Unlit
//	}
//
// Writing mirrors reading:
//
//	s := khr.NewSerializer()
//	var out rawjson.Object
//	if err := gltf.SerializeProperty(doc, material, &out, s); err != nil {
//	    // aborts the document write
//	}
package gltfkit

// Package gltf provides the core data model and extension machinery for
// reading and writing glTF extension payloads.
//
// # Extension Model
//
// Every extensible entity (Material, MeshPrimitive, TextureInfo, and
// extension payloads themselves) embeds Property, which owns three pieces of
// state: opaque "extras" text, typed registered extensions (at most one per
// Kind), and raw unregistered extensions keyed by name.
//
// Whether an extension is registered or unregistered is decided at parse time
// by the Deserializer registry: a claimed name is decoded into a typed
// Extension value, everything else is carried through as raw text and written
// back unchanged. Unknown extensions therefore survive a full read/write
// cycle without loss.
//
// # Registries
//
// Deserializer and Serializer are immutable lookup tables built once from
// explicit entry tables:
//
//	d := gltf.MustNewDeserializer(
//	    gltf.DeserializerEntry{
//	        Name:   "KHR_materials_unlit",
//	        Owner:  gltf.OwnerType[gltf.Material](),
//	        Decode: decodeUnlit,
//	    },
//	)
//
// Dispatch is keyed by the pair (extension name, owner kind): the same name
// can mean different payloads on different entity kinds, and a handler only
// fires when the owner's runtime kind matches. The parse-time pre-check
// (Deserializer.Claims) is deliberately more lenient than the dispatch
// itself; see its documentation.
//
// Registries are never mutated after construction, so one instance can be
// shared across concurrent document operations without synchronization.
//
// # Pipelines
//
// ParseProperty and SerializeProperty are the entry points a document
// reader/writer calls once per extensible entity. ParseTextureInfo and
// SerializeTextureInfo handle texture references, which carry nested
// extension state of their own.
//
// Every failure aborts the current document operation synchronously with a
// classified error from the errors package; there is no partial-result
// recovery.
package gltf

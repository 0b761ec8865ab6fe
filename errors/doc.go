// Package errors provides standardized error handling patterns for gltfkit.
//
// # Overview
//
// The errors package implements a four-class error classification system for
// glTF document processing: MissingMember (a required JSON member is absent),
// Schema (a field has the wrong shape or type), Reference (a referential
// integrity failure such as an unresolved id, an undeclared extension, or a
// name collision), and NoHandler (extension dispatch found no codec for the
// owner's exact runtime kind).
//
// Every parse or serialize failure aborts the current document operation
// synchronously. There is no partial-result recovery and no retry: the
// classification exists so hosts can decide how to report a failure, not
// whether to retry it.
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if _, ok := doc.Textures.Index(info.TextureID); !ok {
//	    return errors.ErrBrokenReference
//	}
//
// Wrap errors with context for debugging:
//
//	if err := json.Unmarshal(raw, &values); err != nil {
//	    return errors.WrapSchema(err, "TextureTransform", "Decode", "offset parsing")
//	}
//
// Check classification at the top-level document operation:
//
//	if err := gltf.ParseProperty(raw, material, deserializer); err != nil {
//	    switch errors.Classify(err) {
//	    case errors.ErrorNoHandler:
//	        // a declared handler exists for another owner kind
//	    case errors.ErrorSchema:
//	        // malformed input document
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: <underlying error>"
//
// which keeps messages grep-able and preserves the wrapped error for
// errors.Is / errors.As checks further up the call chain.
package errors

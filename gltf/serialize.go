package gltf

import (
	"fmt"

	"github.com/c360/gltfkit/errors"
	"github.com/c360/gltfkit/rawjson"
)

// SerializePropertyExtensions emits the owner's "extensions" member into out.
// The member is written only when at least one registered or unregistered
// extension is attached.
//
// Registered extensions are encoded through the serializer registry in Kind
// order. Each one is checked against the owner's unregistered entries (a name
// collision is a referential-integrity failure) and against the document's
// declared extensionsUsed names (undeclared usage fails likewise), and its
// encoded text is re-read into a structured value before attachment.
//
// Unregistered extensions follow in sorted-name order with their raw text
// attached unchanged. The passthrough path skips structural and referential
// validation on purpose: it is what keeps extensions unknown to this library
// intact across a read/write cycle.
func SerializePropertyExtensions(doc *Document, owner Extensible, out *rawjson.Object, s *Serializer) error {
	prop := owner.GetProperty()
	if !prop.HasExtensions() {
		return nil
	}

	var extensions rawjson.Object

	for _, ext := range prop.Extensions() {
		pair, err := s.Serialize(ext, owner, doc)
		if err != nil {
			return err
		}

		if prop.HasUnregisteredExtension(pair.Name) {
			return errors.WrapReference(
				fmt.Errorf("%w: %q", errors.ErrExtensionCollision, pair.Name),
				"Property", "SerializePropertyExtensions", "name collision check")
		}
		if !doc.UsesExtension(pair.Name) {
			return errors.WrapReference(
				fmt.Errorf("%w: %q", errors.ErrUndeclaredExtension, pair.Name),
				"Property", "SerializePropertyExtensions", "declared usage check")
		}

		value, err := rawjson.Compact(pair.Value)
		if err != nil {
			return errors.WrapSchema(err, "Property", "SerializePropertyExtensions",
				fmt.Sprintf("reading back %q", pair.Name))
		}
		extensions.Put(pair.Name, value)
	}

	for _, name := range prop.UnregisteredExtensionNames() {
		raw, _ := prop.UnregisteredExtension(name)
		extensions.Put(name, raw)
	}

	out.Put("extensions", extensions.Raw())
	return nil
}

// SerializePropertyExtras emits the owner's "extras" member with its stored
// raw text, if any is present.
func SerializePropertyExtras(owner Extensible, out *rawjson.Object) {
	if extras := owner.GetProperty().Extras; len(extras) > 0 {
		out.Put("extras", extras)
	}
}

// SerializeProperty emits the extension and extras state shared by every
// extensible entity. Entity writers call it after emitting their own members.
func SerializeProperty(doc *Document, owner Extensible, out *rawjson.Object, s *Serializer) error {
	if err := SerializePropertyExtensions(doc, owner, out, s); err != nil {
		return err
	}
	SerializePropertyExtras(owner, out)
	return nil
}

// SerializeTextureInfo emits a texture reference: "index" resolved to the
// referenced texture's position in textures (failing when the reference does
// not resolve), "texCoord" only when different from 0, and the reference's
// own extensions and extras.
func SerializeTextureInfo(doc *Document, info *TextureInfo, out *rawjson.Object, textures *IndexedContainer[Texture], s *Serializer) error {
	pos, ok := textures.Index(info.TextureID)
	if !ok {
		return errors.WrapReference(
			fmt.Errorf("%w: texture %q", errors.ErrBrokenReference, info.TextureID),
			"TextureInfo", "SerializeTextureInfo", "texture resolution")
	}
	if err := out.PutValue("index", pos); err != nil {
		return err
	}

	if info.TexCoord != 0 {
		if err := out.PutValue("texCoord", info.TexCoord); err != nil {
			return err
		}
	}

	return SerializeProperty(doc, info, out, s)
}

package gltf

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/c360/gltfkit/errors"
	"github.com/c360/gltfkit/rawjson"
)

// ParseExtensions reads the "extensions" member of an entity's JSON object
// and splits its entries between typed dispatch and raw passthrough.
//
// Entries are visited in document order. An entry the deserializer claims
// (see Deserializer.Claims) is decoded and attached via SetExtension,
// replacing any prior extension of the same variant. Every other entry is
// stored as an unregistered extension, first occurrence winning on duplicate
// names.
//
// A nil deserializer passes every extension through as raw text. An absent
// "extensions" member, or one that is not an object, is ignored.
func ParseExtensions(obj json.RawMessage, owner Extensible, d *Deserializer) error {
	extensionsRaw, found, err := rawjson.Find(obj, "extensions")
	if err != nil {
		return errors.WrapSchema(err, "Property", "ParseExtensions", "object scan")
	}
	if !found || !rawjson.IsObject(extensionsRaw) {
		return nil
	}

	members, err := rawjson.Members(extensionsRaw)
	if err != nil {
		return errors.WrapSchema(err, "Property", "ParseExtensions", "extensions scan")
	}

	prop := owner.GetProperty()
	for _, m := range members {
		value, err := rawjson.Compact(m.Value)
		if err != nil {
			return errors.WrapSchema(err, "Property", "ParseExtensions",
				fmt.Sprintf("compacting %q", m.Name))
		}
		pair := ExtensionPair{Name: m.Name, Value: value}

		if d != nil && d.Claims(pair.Name, owner) {
			ext, err := d.Deserialize(pair, owner)
			if err != nil {
				return err
			}
			prop.SetExtension(ext)
		} else {
			prop.SetUnregisteredExtension(pair.Name, pair.Value)
		}
	}

	return nil
}

// ParseExtras stores the raw text of the entity's "extras" member, if
// present. The payload is opaque and never interpreted.
func ParseExtras(obj json.RawMessage, owner Extensible) error {
	extrasRaw, found, err := rawjson.Find(obj, "extras")
	if err != nil {
		return errors.WrapSchema(err, "Property", "ParseExtras", "object scan")
	}
	if !found {
		return nil
	}

	value, err := rawjson.Compact(extrasRaw)
	if err != nil {
		return errors.WrapSchema(err, "Property", "ParseExtras", "compacting extras")
	}
	owner.GetProperty().Extras = value
	return nil
}

// ParseProperty reads the extension and extras state shared by every
// extensible entity. Entity parsers call it after reading their own required
// members.
func ParseProperty(obj json.RawMessage, owner Extensible, d *Deserializer) error {
	if err := ParseExtensions(obj, owner, d); err != nil {
		return err
	}
	return ParseExtras(obj, owner)
}

// ParseTextureInfo reads a texture reference: the required "index" member
// (a non-negative texture position), the optional "texCoord" selector
// (default 0), and the reference's own extensions and extras.
func ParseTextureInfo(obj json.RawMessage, info *TextureInfo, d *Deserializer) error {
	indexRaw, found, err := rawjson.Find(obj, "index")
	if err != nil {
		return errors.WrapSchema(err, "TextureInfo", "ParseTextureInfo", "object scan")
	}
	if !found {
		return errors.WrapMissingMember(
			fmt.Errorf("%w: \"index\"", errors.ErrMissingMember),
			"TextureInfo", "ParseTextureInfo", "index lookup")
	}

	var index int
	if err := json.Unmarshal(indexRaw, &index); err != nil {
		return errors.WrapSchema(err, "TextureInfo", "ParseTextureInfo", "index parsing")
	}
	if index < 0 {
		return errors.WrapSchema(
			fmt.Errorf("%w: negative texture index %d", errors.ErrSchemaViolation, index),
			"TextureInfo", "ParseTextureInfo", "index validation")
	}
	info.TextureID = strconv.Itoa(index)

	info.TexCoord = 0
	texCoordRaw, found, err := rawjson.Find(obj, "texCoord")
	if err != nil {
		return errors.WrapSchema(err, "TextureInfo", "ParseTextureInfo", "object scan")
	}
	if found {
		var texCoord int
		if err := json.Unmarshal(texCoordRaw, &texCoord); err != nil {
			return errors.WrapSchema(err, "TextureInfo", "ParseTextureInfo", "texCoord parsing")
		}
		if texCoord < 0 {
			return errors.WrapSchema(
				fmt.Errorf("%w: negative texCoord %d", errors.ErrSchemaViolation, texCoord),
				"TextureInfo", "ParseTextureInfo", "texCoord validation")
		}
		info.TexCoord = texCoord
	}

	return ParseProperty(obj, info, d)
}

package khr

import (
	"encoding/json"
	"fmt"

	"github.com/c360/gltfkit/errors"
	"github.com/c360/gltfkit/gltf"
	"github.com/c360/gltfkit/rawjson"
)

// Per-field defaults for PBRSpecularGlossiness. Fields at their default are
// elided on output, so these constants are correctness-bearing, not style.
var (
	defaultDiffuseFactor  = gltf.Color4{R: 1, G: 1, B: 1, A: 1}
	defaultSpecularFactor = gltf.Color3{R: 1, G: 1, B: 1}
)

const defaultGlossinessFactor float32 = 1

// PBRSpecularGlossiness is the KHR_materials_pbrSpecularGlossiness material
// extension: a specular-glossiness shading model that replaces the core
// metallic-roughness parameters.
type PBRSpecularGlossiness struct {
	gltf.Property

	DiffuseFactor             gltf.Color4
	DiffuseTexture            gltf.TextureInfo
	SpecularFactor            gltf.Color3
	GlossinessFactor          float32
	SpecularGlossinessTexture gltf.TextureInfo
}

// NewPBRSpecularGlossiness returns an instance with every field at its
// default value.
func NewPBRSpecularGlossiness() *PBRSpecularGlossiness {
	return &PBRSpecularGlossiness{
		DiffuseFactor:    defaultDiffuseFactor,
		SpecularFactor:   defaultSpecularFactor,
		GlossinessFactor: defaultGlossinessFactor,
	}
}

// Kind returns the extension's variant tag.
func (*PBRSpecularGlossiness) Kind() gltf.Kind {
	return gltf.KindPBRSpecularGlossiness
}

// Clone returns an independent deep copy.
func (p *PBRSpecularGlossiness) Clone() gltf.Extension {
	return &PBRSpecularGlossiness{
		Property:                  p.CloneProperty(),
		DiffuseFactor:             p.DiffuseFactor,
		DiffuseTexture:            p.DiffuseTexture.Clone(),
		SpecularFactor:            p.SpecularFactor,
		GlossinessFactor:          p.GlossinessFactor,
		SpecularGlossinessTexture: p.SpecularGlossinessTexture.Clone(),
	}
}

// Equal reports whether other is a PBRSpecularGlossiness with equal field
// values and extension state.
func (p *PBRSpecularGlossiness) Equal(other gltf.Extension) bool {
	o, ok := other.(*PBRSpecularGlossiness)
	return ok &&
		p.EqualProperty(&o.Property) &&
		p.DiffuseFactor == o.DiffuseFactor &&
		p.DiffuseTexture.Equal(&o.DiffuseTexture) &&
		p.SpecularFactor == o.SpecularFactor &&
		p.GlossinessFactor == o.GlossinessFactor &&
		p.SpecularGlossinessTexture.Equal(&o.SpecularGlossinessTexture)
}

func encodePBRSpecularGlossiness(e gltf.Extension, doc *gltf.Document, s *gltf.Serializer) (json.RawMessage, error) {
	specGloss, ok := e.(*PBRSpecularGlossiness)
	if !ok {
		return nil, errors.Wrap(
			fmt.Errorf("%w: expected PBRSpecularGlossiness, got %s", errors.ErrInvalidRegistration, e.Kind()),
			"PBRSpecularGlossiness", "Encode", "variant check")
	}

	var obj rawjson.Object

	if specGloss.DiffuseFactor != defaultDiffuseFactor {
		if err := obj.PutValue("diffuseFactor", specGloss.DiffuseFactor.Slice()); err != nil {
			return nil, err
		}
	}

	if !specGloss.DiffuseTexture.Empty() {
		var texture rawjson.Object
		if err := gltf.SerializeTextureInfo(doc, &specGloss.DiffuseTexture, &texture, &doc.Textures, s); err != nil {
			return nil, err
		}
		obj.Put("diffuseTexture", texture.Raw())
	}

	if specGloss.SpecularFactor != defaultSpecularFactor {
		if err := obj.PutValue("specularFactor", specGloss.SpecularFactor.Slice()); err != nil {
			return nil, err
		}
	}

	if specGloss.GlossinessFactor != defaultGlossinessFactor {
		if err := obj.PutValue("glossinessFactor", specGloss.GlossinessFactor); err != nil {
			return nil, err
		}
	}

	if !specGloss.SpecularGlossinessTexture.Empty() {
		var texture rawjson.Object
		if err := gltf.SerializeTextureInfo(doc, &specGloss.SpecularGlossinessTexture, &texture, &doc.Textures, s); err != nil {
			return nil, err
		}
		obj.Put("specularGlossinessTexture", texture.Raw())
	}

	if err := gltf.SerializeProperty(doc, specGloss, &obj, s); err != nil {
		return nil, err
	}

	return obj.Raw(), nil
}

func decodePBRSpecularGlossiness(raw json.RawMessage, d *gltf.Deserializer) (gltf.Extension, error) {
	specGloss := NewPBRSpecularGlossiness()

	members, err := rawjson.Members(raw)
	if err != nil {
		return nil, errors.WrapSchema(err, "PBRSpecularGlossiness", "Decode", "object scan")
	}

	for _, m := range members {
		switch m.Name {
		case "diffuseFactor":
			color, err := decodeColor4(m.Value)
			if err != nil {
				return nil, errors.WrapSchema(err, "PBRSpecularGlossiness", "Decode", "diffuseFactor parsing")
			}
			specGloss.DiffuseFactor = color

		case "diffuseTexture":
			if err := gltf.ParseTextureInfo(m.Value, &specGloss.DiffuseTexture, d); err != nil {
				return nil, err
			}

		case "specularFactor":
			color, err := decodeColor3(m.Value)
			if err != nil {
				return nil, errors.WrapSchema(err, "PBRSpecularGlossiness", "Decode", "specularFactor parsing")
			}
			specGloss.SpecularFactor = color

		case "glossinessFactor":
			var factor float32
			if err := json.Unmarshal(m.Value, &factor); err != nil {
				return nil, errors.WrapSchema(err, "PBRSpecularGlossiness", "Decode", "glossinessFactor parsing")
			}
			specGloss.GlossinessFactor = factor

		case "specularGlossinessTexture":
			if err := gltf.ParseTextureInfo(m.Value, &specGloss.SpecularGlossinessTexture, d); err != nil {
				return nil, err
			}
		}
	}

	if err := gltf.ParseProperty(raw, specGloss, d); err != nil {
		return nil, err
	}

	return specGloss, nil
}

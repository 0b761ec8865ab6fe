package khr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/gltfkit/errors"
	"github.com/c360/gltfkit/gltf"
)

func TestPBRSpecularGlossiness_Defaults(t *testing.T) {
	specGloss := NewPBRSpecularGlossiness()

	assert.Equal(t, gltf.Color4{R: 1, G: 1, B: 1, A: 1}, specGloss.DiffuseFactor)
	assert.Equal(t, gltf.Color3{R: 1, G: 1, B: 1}, specGloss.SpecularFactor)
	assert.Equal(t, float32(1), specGloss.GlossinessFactor)
	assert.True(t, specGloss.DiffuseTexture.Empty())
	assert.True(t, specGloss.SpecularGlossinessTexture.Empty())
}

func TestPBRSpecularGlossiness_AllDefaultsEncodeEmpty(t *testing.T) {
	doc := testDocument(t)
	material := &gltf.Material{}

	pair, err := NewSerializer().Serialize(NewPBRSpecularGlossiness(), material, doc)
	require.NoError(t, err)
	assert.Equal(t, PBRSpecularGlossinessName, pair.Name)
	assert.Equal(t, `{}`, string(pair.Value))
}

func TestPBRSpecularGlossiness_Decode(t *testing.T) {
	raw := json.RawMessage(`{
		"diffuseFactor": [0.5, 0.25, 0.125, 1.0],
		"diffuseTexture": {"index": 0},
		"specularFactor": [0.1, 0.2, 0.3],
		"glossinessFactor": 0.5,
		"specularGlossinessTexture": {"index": 1, "texCoord": 1}
	}`)

	ext, err := decodePBRSpecularGlossiness(raw, NewDeserializer())
	require.NoError(t, err)
	specGloss := ext.(*PBRSpecularGlossiness)

	assert.Equal(t, gltf.Color4{R: 0.5, G: 0.25, B: 0.125, A: 1}, specGloss.DiffuseFactor)
	assert.Equal(t, "0", specGloss.DiffuseTexture.TextureID)
	assert.Equal(t, gltf.Color3{R: 0.1, G: 0.2, B: 0.3}, specGloss.SpecularFactor)
	assert.Equal(t, float32(0.5), specGloss.GlossinessFactor)
	assert.Equal(t, "1", specGloss.SpecularGlossinessTexture.TextureID)
	assert.Equal(t, 1, specGloss.SpecularGlossinessTexture.TexCoord)
}

func TestPBRSpecularGlossiness_DecodeOmittedMembersKeepDefaults(t *testing.T) {
	ext, err := decodePBRSpecularGlossiness(json.RawMessage(`{"glossinessFactor":0.5}`), NewDeserializer())
	require.NoError(t, err)
	specGloss := ext.(*PBRSpecularGlossiness)

	assert.Equal(t, defaultDiffuseFactor, specGloss.DiffuseFactor)
	assert.Equal(t, defaultSpecularFactor, specGloss.SpecularFactor)
	assert.Equal(t, float32(0.5), specGloss.GlossinessFactor)
}

func TestPBRSpecularGlossiness_DecodeSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"short diffuse factor", `{"diffuseFactor":[1,1,1]}`},
		{"long diffuse factor", `{"diffuseFactor":[1,1,1,1,1]}`},
		{"short specular factor", `{"specularFactor":[1,1]}`},
		{"non-numeric glossiness", `{"glossinessFactor":"shiny"}`},
		{"not an object", `[1,2]`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := decodePBRSpecularGlossiness(json.RawMessage(test.raw), NewDeserializer())
			require.Error(t, err)
			assert.True(t, errors.IsSchemaViolation(err))
		})
	}
}

func TestPBRSpecularGlossiness_DecodeMissingTextureIndex(t *testing.T) {
	_, err := decodePBRSpecularGlossiness(json.RawMessage(`{"diffuseTexture":{}}`), NewDeserializer())
	require.Error(t, err)
	assert.True(t, errors.IsMissingMember(err))
}

func TestPBRSpecularGlossiness_Encode(t *testing.T) {
	doc := testDocument(t)

	specGloss := NewPBRSpecularGlossiness()
	specGloss.DiffuseFactor = gltf.Color4{R: 0.5, G: 0.5, B: 0.5, A: 1}
	specGloss.DiffuseTexture = gltf.TextureInfo{TextureID: "1", TexCoord: 2}
	specGloss.GlossinessFactor = 0.5

	material := &gltf.Material{}
	pair, err := NewSerializer().Serialize(specGloss, material, doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"diffuseFactor": [0.5, 0.5, 0.5, 1],
		"diffuseTexture": {"index": 1, "texCoord": 2},
		"glossinessFactor": 0.5
	}`, string(pair.Value))
}

func TestPBRSpecularGlossiness_EncodeUnresolvedTexture(t *testing.T) {
	doc := testDocument(t)

	specGloss := NewPBRSpecularGlossiness()
	specGloss.DiffuseTexture = gltf.TextureInfo{TextureID: "99"}

	_, err := NewSerializer().Serialize(specGloss, &gltf.Material{}, doc)
	require.Error(t, err)
	assert.True(t, errors.IsBrokenReference(err))
}

func TestPBRSpecularGlossiness_NestedTextureTransform(t *testing.T) {
	raw := json.RawMessage(`{
		"diffuseTexture": {
			"index": 0,
			"extensions": {"KHR_texture_transform": {"rotation": 1.5}}
		}
	}`)

	ext, err := decodePBRSpecularGlossiness(raw, NewDeserializer())
	require.NoError(t, err)
	specGloss := ext.(*PBRSpecularGlossiness)

	nested, ok := specGloss.DiffuseTexture.Extension(gltf.KindTextureTransform)
	require.True(t, ok)
	transform := nested.(*TextureTransform)
	assert.Equal(t, float32(1.5), transform.Rotation)

	// Write side re-encodes the nested extension through the same registry.
	doc := testDocument(t)
	pair, err := NewSerializer().Serialize(specGloss, &gltf.Material{}, doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"diffuseTexture": {
			"index": 0,
			"extensions": {"KHR_texture_transform": {"rotation": 1.5}}
		}
	}`, string(pair.Value))
}

func TestPBRSpecularGlossiness_RoundTrip(t *testing.T) {
	doc := testDocument(t)

	original := NewPBRSpecularGlossiness()
	original.DiffuseFactor = gltf.Color4{R: 0.25, G: 0.5, B: 0.75, A: 1}
	original.DiffuseTexture = gltf.TextureInfo{TextureID: "0"}
	original.SpecularFactor = gltf.Color3{R: 0.5, G: 0.5, B: 0.5}
	original.GlossinessFactor = 0.25
	original.SpecularGlossinessTexture = gltf.TextureInfo{TextureID: "1", TexCoord: 1}

	pair, err := NewSerializer().Serialize(original, &gltf.Material{}, doc)
	require.NoError(t, err)

	reparsed, err := NewDeserializer().Deserialize(pair, &gltf.Material{})
	require.NoError(t, err)
	assert.True(t, original.Equal(reparsed))
	assert.True(t, reparsed.Equal(original))
}

func TestPBRSpecularGlossiness_CloneIndependence(t *testing.T) {
	original := NewPBRSpecularGlossiness()
	original.DiffuseTexture = gltf.TextureInfo{TextureID: "0"}

	clone := original.Clone().(*PBRSpecularGlossiness)
	require.True(t, clone.Equal(original))

	clone.DiffuseTexture.TextureID = "1"
	clone.GlossinessFactor = 0.5
	assert.Equal(t, "0", original.DiffuseTexture.TextureID)
	assert.Equal(t, float32(1), original.GlossinessFactor)
	assert.False(t, clone.Equal(original))
}

package khr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/gltfkit/errors"
	"github.com/c360/gltfkit/gltf"
)

func TestTextureTransform_Defaults(t *testing.T) {
	transform := NewTextureTransform()

	assert.Equal(t, gltf.Vector2{X: 0, Y: 0}, transform.Offset)
	assert.Equal(t, float32(0), transform.Rotation)
	assert.Equal(t, gltf.Vector2{X: 1, Y: 1}, transform.Scale)
	assert.Equal(t, 0, transform.TexCoord)
}

func TestTextureTransform_Decode(t *testing.T) {
	raw := json.RawMessage(`{
		"offset": [0.5, -0.5],
		"rotation": 1.5,
		"scale": [2, 2],
		"texCoord": 1
	}`)

	ext, err := decodeTextureTransform(raw, NewDeserializer())
	require.NoError(t, err)
	transform := ext.(*TextureTransform)

	assert.Equal(t, gltf.Vector2{X: 0.5, Y: -0.5}, transform.Offset)
	assert.Equal(t, float32(1.5), transform.Rotation)
	assert.Equal(t, gltf.Vector2{X: 2, Y: 2}, transform.Scale)
	assert.Equal(t, 1, transform.TexCoord)
}

func TestTextureTransform_DecodeOmittedMembersKeepDefaults(t *testing.T) {
	ext, err := decodeTextureTransform(json.RawMessage(`{"rotation":0.5}`), NewDeserializer())
	require.NoError(t, err)
	transform := ext.(*TextureTransform)

	assert.Equal(t, defaultOffset, transform.Offset)
	assert.Equal(t, defaultScale, transform.Scale)
	assert.Equal(t, 0, transform.TexCoord)
}

func TestTextureTransform_DecodeSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"short offset", `{"offset":[1.0]}`},
		{"long offset", `{"offset":[1,2,3]}`},
		{"short scale", `{"scale":[2]}`},
		{"non-numeric rotation", `{"rotation":"quarter turn"}`},
		{"negative texCoord", `{"texCoord":-1}`},
		{"fractional texCoord", `{"texCoord":0.5}`},
		{"not an object", `[1,2]`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := decodeTextureTransform(json.RawMessage(test.raw), NewDeserializer())
			require.Error(t, err)
			assert.True(t, errors.IsSchemaViolation(err))
		})
	}
}

func TestTextureTransform_AllDefaultsEncodeEmpty(t *testing.T) {
	doc := testDocument(t)

	pair, err := NewSerializer().Serialize(NewTextureTransform(), &gltf.TextureInfo{}, doc)
	require.NoError(t, err)
	assert.Equal(t, TextureTransformName, pair.Name)
	assert.Equal(t, `{}`, string(pair.Value))
}

func TestTextureTransform_EncodeNonDefaultsOnly(t *testing.T) {
	doc := testDocument(t)

	transform := NewTextureTransform()
	transform.Offset = gltf.Vector2{X: 0.5, Y: 0.5}
	transform.TexCoord = 2

	pair, err := NewSerializer().Serialize(transform, &gltf.TextureInfo{}, doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"offset":[0.5,0.5],"texCoord":2}`, string(pair.Value))
}

func TestTextureTransform_RoundTrip(t *testing.T) {
	doc := testDocument(t)

	original := NewTextureTransform()
	original.Offset = gltf.Vector2{X: 0.25, Y: 0.75}
	original.Rotation = 1.5
	original.Scale = gltf.Vector2{X: 2, Y: 0.5}
	original.TexCoord = 3

	pair, err := NewSerializer().Serialize(original, &gltf.TextureInfo{}, doc)
	require.NoError(t, err)

	reparsed, err := NewDeserializer().Deserialize(pair, &gltf.TextureInfo{})
	require.NoError(t, err)
	assert.True(t, original.Equal(reparsed))
}

func TestTextureTransform_CloneAndEqual(t *testing.T) {
	original := NewTextureTransform()
	original.Rotation = 1

	clone := original.Clone().(*TextureTransform)
	require.True(t, clone.Equal(original))

	clone.Scale = gltf.Vector2{X: 3, Y: 3}
	assert.Equal(t, defaultScale, original.Scale)
	assert.False(t, clone.Equal(original))
	assert.False(t, original.Equal(NewUnlit()))
}

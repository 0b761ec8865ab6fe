package gltf

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperty_SetExtension_ReplacesByKind(t *testing.T) {
	var prop Property

	first := &stubExtension{kind: KindUnlit, payload: "first"}
	second := &stubExtension{kind: KindUnlit, payload: "second"}

	prop.SetExtension(first)
	prop.SetExtension(second)

	require.Len(t, prop.Extensions(), 1)
	ext, ok := prop.Extension(KindUnlit)
	require.True(t, ok)
	assert.True(t, ext.Equal(second))
	assert.False(t, ext.Equal(first))
}

func TestProperty_SetExtension_Nil(t *testing.T) {
	var prop Property
	prop.SetExtension(nil)
	assert.False(t, prop.HasExtensions())
}

func TestProperty_Extensions_KindOrder(t *testing.T) {
	var prop Property
	prop.SetExtension(&stubExtension{kind: KindTextureTransform})
	prop.SetExtension(&stubExtension{kind: KindPBRSpecularGlossiness})
	prop.SetExtension(&stubExtension{kind: KindDracoMeshCompression})

	extensions := prop.Extensions()
	require.Len(t, extensions, 3)
	assert.Equal(t, KindPBRSpecularGlossiness, extensions[0].Kind())
	assert.Equal(t, KindDracoMeshCompression, extensions[1].Kind())
	assert.Equal(t, KindTextureTransform, extensions[2].Kind())
}

func TestProperty_RemoveExtension(t *testing.T) {
	var prop Property
	prop.SetExtension(&stubExtension{kind: KindUnlit})

	prop.RemoveExtension(KindUnlit)
	_, ok := prop.Extension(KindUnlit)
	assert.False(t, ok)

	// Removing an absent kind is a no-op.
	prop.RemoveExtension(KindUnlit)
}

func TestProperty_UnregisteredExtension_FirstWriteWins(t *testing.T) {
	var prop Property

	assert.True(t, prop.SetUnregisteredExtension("EXT_custom", json.RawMessage(`{"v":1}`)))
	assert.False(t, prop.SetUnregisteredExtension("EXT_custom", json.RawMessage(`{"v":2}`)))

	raw, ok := prop.UnregisteredExtension("EXT_custom")
	require.True(t, ok)
	assert.Equal(t, `{"v":1}`, string(raw))

	assert.True(t, prop.HasUnregisteredExtension("EXT_custom"))
	assert.False(t, prop.HasUnregisteredExtension("EXT_other"))
}

func TestProperty_UnregisteredExtensionNames_Sorted(t *testing.T) {
	var prop Property
	prop.SetUnregisteredExtension("EXT_zeta", json.RawMessage(`{}`))
	prop.SetUnregisteredExtension("EXT_alpha", json.RawMessage(`{}`))

	assert.Equal(t, []string{"EXT_alpha", "EXT_zeta"}, prop.UnregisteredExtensionNames())
}

func TestProperty_UnregisteredExtensions_ReturnsCopy(t *testing.T) {
	var prop Property
	prop.SetUnregisteredExtension("EXT_custom", json.RawMessage(`{"v":1}`))

	copied := prop.UnregisteredExtensions()
	copied["EXT_custom"][2] = 'x'
	copied["EXT_new"] = json.RawMessage(`{}`)

	raw, _ := prop.UnregisteredExtension("EXT_custom")
	assert.Equal(t, `{"v":1}`, string(raw))
	assert.False(t, prop.HasUnregisteredExtension("EXT_new"))
}

func TestProperty_CloneProperty_Independence(t *testing.T) {
	var prop Property
	prop.Extras = json.RawMessage(`{"note":"original"}`)
	prop.SetExtension(&stubExtension{kind: KindUnlit, payload: "original"})
	prop.SetUnregisteredExtension("EXT_custom", json.RawMessage(`{"v":1}`))

	clone := prop.CloneProperty()
	require.True(t, clone.EqualProperty(&prop))

	// Mutating the clone leaves the original untouched.
	clone.Extras[9] = 'x'
	clone.SetExtension(&stubExtension{kind: KindUnlit, payload: "changed"})
	clone.SetUnregisteredExtension("EXT_other", json.RawMessage(`{}`))

	assert.Equal(t, `{"note":"original"}`, string(prop.Extras))
	ext, _ := prop.Extension(KindUnlit)
	assert.True(t, ext.Equal(&stubExtension{kind: KindUnlit, payload: "original"}))
	assert.False(t, prop.HasUnregisteredExtension("EXT_other"))
}

func TestProperty_EqualProperty(t *testing.T) {
	base := func() Property {
		var p Property
		p.Extras = json.RawMessage(`{"a":1}`)
		p.SetExtension(&stubExtension{kind: KindUnlit, payload: "x"})
		p.SetUnregisteredExtension("EXT_custom", json.RawMessage(`{"v":1}`))
		return p
	}

	tests := []struct {
		name     string
		mutate   func(*Property)
		expected bool
	}{
		{"identical", func(*Property) {}, true},
		{"different extras", func(p *Property) { p.Extras = json.RawMessage(`{"a":2}`) }, false},
		{"absent extras", func(p *Property) { p.Extras = nil }, false},
		{"different registered payload", func(p *Property) {
			p.SetExtension(&stubExtension{kind: KindUnlit, payload: "y"})
		}, false},
		{"extra registered extension", func(p *Property) {
			p.SetExtension(&stubExtension{kind: KindTextureTransform})
		}, false},
		{"different unregistered text", func(p *Property) {
			p.unregistered["EXT_custom"] = json.RawMessage(`{"v":2}`)
		}, false},
		{"extra unregistered entry", func(p *Property) {
			p.SetUnregisteredExtension("EXT_other", json.RawMessage(`{}`))
		}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := base()
			b := base()
			test.mutate(&b)
			assert.Equal(t, test.expected, a.EqualProperty(&b))
			assert.Equal(t, test.expected, b.EqualProperty(&a))
		})
	}
}

func TestTextureInfo_CloneAndEqual(t *testing.T) {
	info := TextureInfo{TextureID: "2", TexCoord: 1}
	info.Extras = json.RawMessage(`{"n":1}`)

	clone := info.Clone()
	assert.True(t, clone.Equal(&info))

	clone.TexCoord = 3
	assert.False(t, clone.Equal(&info))

	other := TextureInfo{TextureID: "1", TexCoord: 1}
	other.Extras = json.RawMessage(`{"n":1}`)
	assert.False(t, info.Equal(&other))
}

func TestTextureInfo_Empty(t *testing.T) {
	var info TextureInfo
	assert.True(t, info.Empty())

	info.TextureID = "0"
	assert.False(t, info.Empty())
}

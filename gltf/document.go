package gltf

import "slices"

// Texture is a document-level texture element. Only the identifier matters to
// the extension machinery; image and sampler state live with the bulk data
// model.
type Texture struct {
	ID string
}

// Identifier returns the texture's identifier.
func (t Texture) Identifier() string {
	return t.ID
}

// BufferView is a document-level buffer-view element, referenced by
// compressed mesh payloads.
type BufferView struct {
	ID string
}

// Identifier returns the buffer view's identifier.
func (b BufferView) Identifier() string {
	return b.ID
}

// Material is a document material. It is an owner kind for extension
// dispatch: material extensions register against it.
type Material struct {
	Property
	Name string
}

// MeshPrimitive is one primitive of a document mesh and an owner kind for
// extension dispatch.
type MeshPrimitive struct {
	Property
}

// TextureInfo is a reference to a document texture plus an optional
// texture-coordinate-set selector. Texture references are themselves
// extensible, so a TextureInfo is both an entity carrying extensions and an
// owner kind for dispatch.
type TextureInfo struct {
	Property

	// TextureID identifies the referenced texture in Document.Textures.
	// Empty means the reference is unset.
	TextureID string
	// TexCoord selects the texture-coordinate set. Zero is the default and
	// is elided on output.
	TexCoord int
}

// Empty reports whether the reference is unset.
func (t *TextureInfo) Empty() bool {
	return t.TextureID == ""
}

// Clone returns an independent deep copy.
func (t *TextureInfo) Clone() TextureInfo {
	return TextureInfo{
		Property:  t.CloneProperty(),
		TextureID: t.TextureID,
		TexCoord:  t.TexCoord,
	}
}

// Equal reports whether two texture references point at the same texture with
// the same coordinate set and equal extension state.
func (t *TextureInfo) Equal(other *TextureInfo) bool {
	return t.TextureID == other.TextureID &&
		t.TexCoord == other.TexCoord &&
		t.EqualProperty(&other.Property)
}

// Document is the view of a glTF document the extension machinery consumes:
// the declared-extension-name set and the indexed collections needed to
// resolve numeric references. The bulk data model (nodes, meshes, buffers,
// accessors) lives with the host.
type Document struct {
	// ExtensionsUsed lists the extension names the document declares, in
	// document order. Registered extensions must appear here to be
	// serialized.
	ExtensionsUsed []string

	Textures    IndexedContainer[Texture]
	BufferViews IndexedContainer[BufferView]
}

// UsesExtension reports whether the document declares the named extension.
func (d *Document) UsesExtension(name string) bool {
	return slices.Contains(d.ExtensionsUsed, name)
}

// AddExtensionUsed declares an extension name. Adding a name twice is a
// no-op.
func (d *Document) AddExtensionUsed(name string) {
	if !d.UsesExtension(name) {
		d.ExtensionsUsed = append(d.ExtensionsUsed, name)
	}
}

package gltf

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Property is the extensible base shared by every entity that can carry
// extensions and extras: materials, mesh primitives, texture references, and
// extension payloads themselves.
//
// A Property owns three pieces of state:
//
//   - Extras: the entity's raw "extras" JSON, stored verbatim and never
//     interpreted. A nil value means the member is absent and is omitted
//     entirely on output.
//   - registered extensions: typed Extension values, at most one per Kind.
//     Attaching a second instance of the same Kind replaces the first.
//   - unregistered extensions: raw name→JSON entries for extensions with no
//     known codec, passed through unchanged. The first occurrence of a name
//     wins; later duplicates are dropped.
//
// Each entity exclusively owns its Property state; cloning deep-copies all of
// it, so no two live entities ever alias extension state.
type Property struct {
	// Extras holds the entity's raw "extras" JSON verbatim. Nil means absent.
	Extras json.RawMessage

	registered   map[Kind]Extension
	unregistered map[string]json.RawMessage
}

// GetProperty returns the entity's extensible base. Embedding Property gives
// an entity this method, which is how entities satisfy Extensible.
func (p *Property) GetProperty() *Property {
	return p
}

// SetExtension attaches a typed extension, replacing any existing extension
// of the same Kind.
func (p *Property) SetExtension(e Extension) {
	if e == nil {
		return
	}
	if p.registered == nil {
		p.registered = make(map[Kind]Extension)
	}
	p.registered[e.Kind()] = e
}

// Extension returns the attached extension of the given Kind.
func (p *Property) Extension(k Kind) (Extension, bool) {
	e, ok := p.registered[k]
	return e, ok
}

// RemoveExtension detaches the extension of the given Kind, if present.
func (p *Property) RemoveExtension(k Kind) {
	delete(p.registered, k)
}

// Extensions returns all attached typed extensions in Kind order.
func (p *Property) Extensions() []Extension {
	if len(p.registered) == 0 {
		return nil
	}
	kinds := make([]Kind, 0, len(p.registered))
	for k := range p.registered {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	result := make([]Extension, 0, len(kinds))
	for _, k := range kinds {
		result = append(result, p.registered[k])
	}
	return result
}

// SetUnregisteredExtension stores the raw text of an extension with no known
// codec. The first write for a name wins; the return value reports whether
// the entry was stored.
func (p *Property) SetUnregisteredExtension(name string, raw json.RawMessage) bool {
	if _, exists := p.unregistered[name]; exists {
		return false
	}
	if p.unregistered == nil {
		p.unregistered = make(map[string]json.RawMessage)
	}
	p.unregistered[name] = raw
	return true
}

// HasUnregisteredExtension reports whether an unregistered extension with the
// given name is present.
func (p *Property) HasUnregisteredExtension(name string) bool {
	_, ok := p.unregistered[name]
	return ok
}

// UnregisteredExtension returns the raw text of the named unregistered
// extension.
func (p *Property) UnregisteredExtension(name string) (json.RawMessage, bool) {
	raw, ok := p.unregistered[name]
	return raw, ok
}

// UnregisteredExtensionNames returns the names of all unregistered
// extensions, sorted.
func (p *Property) UnregisteredExtensionNames() []string {
	if len(p.unregistered) == 0 {
		return nil
	}
	names := make([]string, 0, len(p.unregistered))
	for name := range p.unregistered {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// UnregisteredExtensions returns a copy of the unregistered extension map.
func (p *Property) UnregisteredExtensions() map[string]json.RawMessage {
	if len(p.unregistered) == 0 {
		return nil
	}
	result := make(map[string]json.RawMessage, len(p.unregistered))
	for name, raw := range p.unregistered {
		result[name] = slices.Clone(raw)
	}
	return result
}

// HasExtensions reports whether any registered or unregistered extension is
// attached.
func (p *Property) HasExtensions() bool {
	return len(p.registered) > 0 || len(p.unregistered) > 0
}

// CloneProperty returns an independent deep copy of the extensible state.
func (p *Property) CloneProperty() Property {
	clone := Property{
		Extras: slices.Clone(p.Extras),
	}
	if len(p.registered) > 0 {
		clone.registered = make(map[Kind]Extension, len(p.registered))
		for k, e := range p.registered {
			clone.registered[k] = e.Clone()
		}
	}
	if len(p.unregistered) > 0 {
		clone.unregistered = make(map[string]json.RawMessage, len(p.unregistered))
		for name, raw := range p.unregistered {
			clone.unregistered[name] = slices.Clone(raw)
		}
	}
	return clone
}

// EqualProperty reports whether two extensible bases hold equal state:
// identical extras text, the same unregistered entries, and pairwise-equal
// registered extensions.
func (p *Property) EqualProperty(other *Property) bool {
	if !bytes.Equal(p.Extras, other.Extras) {
		return false
	}

	if len(p.unregistered) != len(other.unregistered) {
		return false
	}
	for name, raw := range p.unregistered {
		otherRaw, ok := other.unregistered[name]
		if !ok || !bytes.Equal(raw, otherRaw) {
			return false
		}
	}

	if len(p.registered) != len(other.registered) {
		return false
	}
	for k, e := range p.registered {
		otherExt, ok := other.registered[k]
		if !ok || !e.Equal(otherExt) {
			return false
		}
	}

	return true
}

// Extensible is satisfied by every entity that embeds Property. The parse and
// serialize pipelines accept owners through this interface while dispatching
// on the owner's concrete type.
type Extensible interface {
	GetProperty() *Property
}

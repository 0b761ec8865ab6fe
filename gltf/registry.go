package gltf

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/c360/gltfkit/errors"
)

// DecodeFunc parses one extension's raw JSON into a typed Extension. The
// deserializer is passed through so codecs can parse nested objects that
// carry their own extensions and extras.
type DecodeFunc func(raw json.RawMessage, d *Deserializer) (Extension, error)

// EncodeFunc serializes a typed Extension back to its raw JSON form. The
// serializer is passed through for nested objects, and the document is
// available for resolving references.
type EncodeFunc func(e Extension, doc *Document, s *Serializer) (json.RawMessage, error)

// OwnerType returns the owner-kind tag for entity type T, for use in
// registry entries:
//
//	gltf.OwnerType[gltf.Material]()
func OwnerType[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ownerTypeOf normalizes an owner instance to its owner-kind tag. Owners are
// passed by pointer; the tag is the pointed-to entity type.
func ownerTypeOf(owner any) reflect.Type {
	t := reflect.TypeOf(owner)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// handlerKey identifies one registry entry by extension name and owner kind.
type handlerKey struct {
	name  string
	owner reflect.Type
}

// DeserializerEntry binds an extension name and owner kind to a decoder.
type DeserializerEntry struct {
	Name   string
	Owner  reflect.Type
	Decode DecodeFunc
}

// Deserializer is an immutable lookup table mapping (extension name, owner
// kind) to decode functions. It is built once from an explicit entry table
// and never mutated afterwards, so a single instance is safe to share across
// concurrent document operations.
type Deserializer struct {
	handlers map[handlerKey]DecodeFunc
	names    map[string]struct{}
}

// NewDeserializer builds a deserializer registry from an entry table.
// Entries with an empty name, a nil owner, a nil decode function, or a
// duplicate (name, owner) pair are rejected.
func NewDeserializer(entries ...DeserializerEntry) (*Deserializer, error) {
	d := &Deserializer{
		handlers: make(map[handlerKey]DecodeFunc, len(entries)),
		names:    make(map[string]struct{}, len(entries)),
	}

	for _, entry := range entries {
		if err := validateEntry(entry.Name, entry.Owner, entry.Decode == nil, "NewDeserializer"); err != nil {
			return nil, err
		}

		key := handlerKey{name: entry.Name, owner: entry.Owner}
		if _, exists := d.handlers[key]; exists {
			return nil, errors.Wrap(
				fmt.Errorf("%w: duplicate handler for %q on %s",
					errors.ErrInvalidRegistration, entry.Name, entry.Owner),
				"Deserializer", "NewDeserializer", "duplicate handler check")
		}

		d.handlers[key] = entry.Decode
		d.names[entry.Name] = struct{}{}
	}

	return d, nil
}

// MustNewDeserializer is like NewDeserializer but panics on an invalid entry
// table. It is intended for static tables built at startup.
func MustNewDeserializer(entries ...DeserializerEntry) *Deserializer {
	d, err := NewDeserializer(entries...)
	if err != nil {
		panic(err)
	}
	return d
}

// HasHandler reports whether a decoder exists for the name and the runtime
// kind of owner.
func (d *Deserializer) HasHandler(name string, owner any) bool {
	_, ok := d.handlers[handlerKey{name: name, owner: ownerTypeOf(owner)}]
	return ok
}

// HasHandlerForName reports whether a decoder exists for the name on any
// owner kind.
func (d *Deserializer) HasHandlerForName(name string) bool {
	_, ok := d.names[name]
	return ok
}

// Claims reports whether the named extension should be dispatched for owner
// rather than passed through as raw text.
//
// The check is deliberately lenient: a name registered against a different
// owner kind still claims the extension, so the subsequent strict Deserialize
// surfaces a no-handler error instead of the payload silently degrading to
// passthrough. This keeps an extension appearing on an unexpected entity
// visible as a failure.
func (d *Deserializer) Claims(name string, owner any) bool {
	return d.HasHandler(name, owner) || d.HasHandlerForName(name)
}

// Deserialize decodes pair into a typed Extension using the handler for
// (pair.Name, runtime kind of owner). The lookup is strict: if no entry
// matches the exact owner kind, a no-handler error is returned even when the
// name is registered against other kinds.
func (d *Deserializer) Deserialize(pair ExtensionPair, owner any) (Extension, error) {
	ownerType := ownerTypeOf(owner)
	decode, ok := d.handlers[handlerKey{name: pair.Name, owner: ownerType}]
	if !ok {
		return nil, errors.WrapNoHandler(
			fmt.Errorf("%w: extension %q on owner kind %s", errors.ErrNoHandler, pair.Name, ownerType),
			"Deserializer", "Deserialize", "handler lookup")
	}

	ext, err := decode(pair.Value, d)
	if err != nil {
		return nil, errors.Wrap(err, "Deserializer", "Deserialize", fmt.Sprintf("decoding %q", pair.Name))
	}
	return ext, nil
}

// serializerHandler carries the registered name alongside the encoder so
// serialization can recover the name from the extension's variant identity.
type serializerHandler struct {
	name   string
	encode EncodeFunc
}

// serializerKey identifies one serializer entry by extension variant and
// owner kind.
type serializerKey struct {
	kind  Kind
	owner reflect.Type
}

// SerializerEntry binds an extension variant, its registered name, and an
// owner kind to an encoder.
type SerializerEntry struct {
	Name   string
	Kind   Kind
	Owner  reflect.Type
	Encode EncodeFunc
}

// Serializer is the write-side counterpart of Deserializer: an immutable
// table keyed by (extension variant, owner kind) that recovers the registered
// name and encodes typed extensions back to raw JSON.
type Serializer struct {
	handlers map[serializerKey]serializerHandler
	byName   map[handlerKey]struct{}
	names    map[string]struct{}
}

// NewSerializer builds a serializer registry from an entry table, applying
// the same entry validation as NewDeserializer plus uniqueness of the
// (variant, owner) pair.
func NewSerializer(entries ...SerializerEntry) (*Serializer, error) {
	s := &Serializer{
		handlers: make(map[serializerKey]serializerHandler, len(entries)),
		byName:   make(map[handlerKey]struct{}, len(entries)),
		names:    make(map[string]struct{}, len(entries)),
	}

	for _, entry := range entries {
		if err := validateEntry(entry.Name, entry.Owner, entry.Encode == nil, "NewSerializer"); err != nil {
			return nil, err
		}

		key := serializerKey{kind: entry.Kind, owner: entry.Owner}
		if _, exists := s.handlers[key]; exists {
			return nil, errors.Wrap(
				fmt.Errorf("%w: duplicate handler for %s on %s",
					errors.ErrInvalidRegistration, entry.Kind, entry.Owner),
				"Serializer", "NewSerializer", "duplicate handler check")
		}

		s.handlers[key] = serializerHandler{name: entry.Name, encode: entry.Encode}
		s.byName[handlerKey{name: entry.Name, owner: entry.Owner}] = struct{}{}
		s.names[entry.Name] = struct{}{}
	}

	return s, nil
}

// MustNewSerializer is like NewSerializer but panics on an invalid entry
// table. It is intended for static tables built at startup.
func MustNewSerializer(entries ...SerializerEntry) *Serializer {
	s, err := NewSerializer(entries...)
	if err != nil {
		panic(err)
	}
	return s
}

// HasHandler reports whether an encoder exists for the name and the runtime
// kind of owner.
func (s *Serializer) HasHandler(name string, owner any) bool {
	_, ok := s.byName[handlerKey{name: name, owner: ownerTypeOf(owner)}]
	return ok
}

// HasHandlerForName reports whether an encoder exists for the name on any
// owner kind.
func (s *Serializer) HasHandlerForName(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Serialize encodes e through the handler registered for its variant on the
// runtime kind of owner, returning the registered name together with the raw
// JSON form.
func (s *Serializer) Serialize(e Extension, owner any, doc *Document) (ExtensionPair, error) {
	ownerType := ownerTypeOf(owner)
	handler, ok := s.handlers[serializerKey{kind: e.Kind(), owner: ownerType}]
	if !ok {
		return ExtensionPair{}, errors.WrapNoHandler(
			fmt.Errorf("%w: %s extension on owner kind %s", errors.ErrNoHandler, e.Kind(), ownerType),
			"Serializer", "Serialize", "handler lookup")
	}

	raw, err := handler.encode(e, doc, s)
	if err != nil {
		return ExtensionPair{}, errors.Wrap(
			err, "Serializer", "Serialize", fmt.Sprintf("encoding %q", handler.name))
	}
	return ExtensionPair{Name: handler.name, Value: raw}, nil
}

// validateEntry applies the shared registration checks for both registries.
func validateEntry(name string, owner reflect.Type, nilCodec bool, operation string) error {
	if name == "" {
		return errors.Wrap(errors.ErrInvalidRegistration, "Registry", operation, "name validation")
	}
	if owner == nil {
		return errors.Wrap(errors.ErrInvalidRegistration, "Registry", operation, "owner kind validation")
	}
	if nilCodec {
		return errors.Wrap(errors.ErrInvalidRegistration, "Registry", operation, "codec validation")
	}
	return nil
}

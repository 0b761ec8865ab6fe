package gltf

import "encoding/json"

// stubExtension is a minimal Extension implementation for registry and
// pipeline tests. The kind is configurable so tests can exercise several
// variants without pulling in the real codecs.
type stubExtension struct {
	kind    Kind
	payload string
}

func (s *stubExtension) Kind() Kind {
	return s.kind
}

func (s *stubExtension) Clone() Extension {
	clone := *s
	return &clone
}

func (s *stubExtension) Equal(other Extension) bool {
	o, ok := other.(*stubExtension)
	return ok && *s == *o
}

// stubDecoder returns a DecodeFunc producing stubExtensions of the given
// kind from payloads of the form {"value":"..."}.
func stubDecoder(kind Kind) DecodeFunc {
	return func(raw json.RawMessage, _ *Deserializer) (Extension, error) {
		var payload struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, err
		}
		return &stubExtension{kind: kind, payload: payload.Value}, nil
	}
}

// stubEncoder mirrors stubDecoder on the write side.
func stubEncoder(e Extension, _ *Document, _ *Serializer) (json.RawMessage, error) {
	stub := e.(*stubExtension)
	return json.Marshal(struct {
		Value string `json:"value"`
	}{Value: stub.payload})
}

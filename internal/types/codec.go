// =============================================================================
// Seasonal Augmenter - Order-Preserving Object Codec
// =============================================================================
//
// encoding/json decodes objects into structs or maps, and both forget the
// order of keys. The helpers in this file walk the token stream instead so
// every modelled object can be written back with its keys in the order they
// were read, keeping any member the model does not know about.
//
// RULES:
//   - A member that decodes into its typed field is written from that field.
//   - A member that does not (unknown key, null, wrong JSON type) is kept as
//     raw JSON and written back verbatim.
//   - Objects built in code (not decoded) use the type's canonical key order.
//
// =============================================================================

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// objectFields records how an object looked on disk.
type objectFields struct {
	// keys is the document order of the object's members.
	keys []string

	// extra holds members that are written back verbatim.
	extra map[string]json.RawMessage

	// decoded is true when the object came from JSON rather than code.
	decoded bool
}

// own marks a member as held by its typed field. Setters call this so a
// rewritten value replaces any raw copy and appears in the output.
func (f *objectFields) own(key string) {
	delete(f.extra, key)
	if f.decoded && !slices.Contains(f.keys, key) {
		f.keys = append(f.keys, key)
	}
}

// decodeObject reads a JSON object and returns its keys in document order
// together with the raw value of each member. Later duplicates win.
func decodeObject(data []byte) ([]string, map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	keys := []string{}
	raw := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected an object key, got %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, nil, fmt.Errorf("member %q: %w", key, err)
		}
		if _, seen := raw[key]; !seen {
			keys = append(keys, key)
		}
		raw[key] = value
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}

	return keys, raw, nil
}

// decodeMembers decodes an object into the typed targets in members, keyed by
// JSON member name. Members that cannot be decoded are kept raw.
func decodeMembers(data []byte, members map[string]any) (objectFields, error) {
	keys, raw, err := decodeObject(data)
	if err != nil {
		return objectFields{}, err
	}

	fields := objectFields{
		keys:    keys,
		extra:   make(map[string]json.RawMessage),
		decoded: true,
	}
	for _, key := range keys {
		value := raw[key]
		if target, known := members[key]; known && !isNull(value) {
			if err := json.Unmarshal(value, target); err == nil {
				continue
			}
		}
		fields.extra[key] = value
	}
	return fields, nil
}

// encodeObject writes an object from its typed members and raw extras.
func encodeObject(fields objectFields, canonical []string, members map[string]any) ([]byte, error) {
	order := canonical
	if fields.decoded {
		order = fields.keys
	}

	var buf bytes.Buffer
	buf.WriteByte('{')

	written := 0
	for _, key := range order {
		var value []byte
		if raw, ok := fields.extra[key]; ok {
			value = raw
		} else if member, ok := members[key]; ok {
			encoded, err := marshalUnescaped(member)
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", key, err)
			}
			value = encoded
		} else {
			continue
		}

		name, err := marshalUnescaped(key)
		if err != nil {
			return nil, err
		}

		if written > 0 {
			buf.WriteByte(',')
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
		written++
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalUnescaped is json.Marshal without HTML escaping, so characters such
// as '&' and '<' in product names survive a round trip untouched.
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

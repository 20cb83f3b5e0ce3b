package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ComponentData maps field names to values and remembers insertion order.
// The factory inserts keys in schema order, so exports list fields the way
// the schema declares them. The zero value is an empty map ready to use.
type ComponentData struct {
	keys   []string
	values map[string]string
}

// NewComponentData builds a ComponentData from alternating key/value pairs
func NewComponentData(pairs ...string) ComponentData {
	var d ComponentData
	for i := 0; i+1 < len(pairs); i += 2 {
		d.Set(pairs[i], pairs[i+1])
	}
	return d
}

// Get returns the value stored under key
func (d ComponentData) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Value returns the value stored under key, or "" when absent
func (d ComponentData) Value(key string) string {
	return d.values[key]
}

// Has reports whether key is present
func (d ComponentData) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Set replaces the value for key, appending the key if it is new
func (d *ComponentData) Set(key, value string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Keys returns the keys in insertion order
func (d ComponentData) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Len returns the number of keys
func (d ComponentData) Len() int {
	return len(d.keys)
}

// Clone returns an independent copy
func (d ComponentData) Clone() ComponentData {
	var out ComponentData
	for _, k := range d.keys {
		out.Set(k, d.values[k])
	}
	return out
}

// Equal reports whether both maps hold the same keys, in the same order,
// with the same values
func (d ComponentData) Equal(other ComponentData) bool {
	if len(d.keys) != len(other.keys) {
		return false
	}
	for i, k := range d.keys {
		if other.keys[i] != k || other.values[k] != d.values[k] {
			return false
		}
	}
	return true
}

// MarshalJSON writes the fields as a JSON object in insertion order
func (d ComponentData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(d.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping the document's key order.
// Null values decode as empty strings; other non-string values are rejected.
func (d *ComponentData) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("component data: expected object, got %v", tok)
	}

	var out ComponentData
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("component data: expected key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("component data field %q: %w", key, err)
		}
		var value *string
		if err := json.Unmarshal(raw, &value); err != nil {
			return fmt.Errorf("component data field %q: expected string: %w", key, err)
		}
		if value == nil {
			out.Set(key, "")
		} else {
			out.Set(key, *value)
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*d = out
	return nil
}

// MarshalYAML emits a mapping node so YAML output keeps insertion order
func (d ComponentData) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range d.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: d.values[k]},
		)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping node keeping the document's key order
func (d *ComponentData) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("component data: expected mapping, got kind %d", node.Kind)
	}
	var out ComponentData
	for i := 0; i+1 < len(node.Content); i += 2 {
		out.Set(node.Content[i].Value, node.Content[i+1].Value)
	}
	*d = out
	return nil
}

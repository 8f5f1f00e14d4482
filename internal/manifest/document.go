package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var errNotObject = errors.New("not a JSON object")

// utf8BOM is accepted in front of package.json and dropped on rewrite.
var utf8BOM = []byte("\xef\xbb\xbf")

func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

// Document is a decoded package.json. Keys keep their original order.
type Document struct {
	root *object
}

// object is a JSON object whose member order is preserved. Values are kept
// as raw JSON so untouched members are written back exactly as read.
type object struct {
	keys   []string
	values map[string]json.RawMessage
}

func newObject() *object {
	return &object{values: make(map[string]json.RawMessage)}
}

// Parse decodes package.json contents. A leading UTF-8 byte order mark is
// ignored and Encode does not write it back.
func Parse(data []byte) (*Document, error) {
	root, err := decodeObject(stripBOM(data))
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// Encode renders the document as 2-space indented JSON with a trailing newline.
func (d *Document) Encode() ([]byte, error) {
	compact, err := d.root.encode()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("indenting manifest: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Dependency returns the version string for a dependency, if present.
func (d *Document) Dependency(name string) (string, bool, error) {
	deps, err := d.dependencies()
	if err != nil {
		return "", false, err
	}
	raw, ok := deps.values[name]
	if !ok {
		return "", false, nil
	}
	return rawString(raw), true, nil
}

// dependencies decodes the "dependencies" member, or returns an empty object
// when the member is absent.
func (d *Document) dependencies() (*object, error) {
	raw, ok := d.root.values["dependencies"]
	if !ok {
		return newObject(), nil
	}
	deps, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf(`"dependencies": %w`, err)
	}
	return deps, nil
}

func (d *Document) setDependencies(deps *object) error {
	encoded, err := deps.encode()
	if err != nil {
		return err
	}
	d.root.set("dependencies", encoded)
	return nil
}

func decodeObject(data []byte) (*object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	obj := newObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		obj.set(key, raw)
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, errors.New("unexpected data after top-level object")
		}
		return nil, err
	}
	return obj, nil
}

// set replaces an existing member in place or appends a new one.
func (o *object) set(key string, value json.RawMessage) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// encode writes the object as compact JSON.
func (o *object) encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := encodeString(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		if err := json.Compact(&buf, o.values[key]); err != nil {
			return nil, fmt.Errorf("encoding %q: %w", key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeString quotes s without HTML escaping, matching what npm writes.
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// rawString returns a JSON string's value, or the raw text for other kinds.
func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

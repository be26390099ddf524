// Package yaml decodes YAML streams into the same plain value shapes the
// JSON decoder produces: map[string]any, []any and scalars.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Decoder reads consecutive documents from a YAML stream.
type Decoder struct {
	dec *yaml.Decoder
	n   int
}

// NewDecoder wraps r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: yaml.NewDecoder(r)}
}

// Next returns the next document, or io.EOF once the stream is exhausted.
func (d *Decoder) Next() (any, error) {
	var node any
	if err := d.dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("yaml: document %d: %w", d.n, err)
	}
	d.n++
	return Normalize(node), nil
}

// Decode reads every document from r.
func Decode(r io.Reader) ([]any, error) {
	d := NewDecoder(r)
	var out []any
	for {
		v, err := d.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}

// DecodeBytes is Decode over b.
func DecodeBytes(b []byte) ([]any, error) { return Decode(bytes.NewReader(b)) }

// Normalize converts YAML-decoded values, which may contain map[any]any,
// into JSON-like values recursively.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = Normalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = Normalize(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = Normalize(t[i])
		}
		return out
	default:
		return v
	}
}

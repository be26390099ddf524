// Package json decodes JSON documents into plain values with numbers kept as
// json.Number.
package json

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

// Decoder reads consecutive JSON documents from a stream.
type Decoder struct {
	dec *j.Decoder
	n   int
}

// NewDecoder wraps r. Numbers decode as json.Number.
func NewDecoder(r io.Reader) *Decoder {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &Decoder{dec: dec}
}

// Next returns the next document, or io.EOF once the stream is exhausted.
func (d *Decoder) Next() (any, error) {
	var v any
	if err := d.dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("json: document %d: %w", d.n, err)
	}
	d.n++
	return v, nil
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

// Package source decodes JSON and YAML input into plain Go values that the
// grampa classifier and stringifier understand.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	jsonsrc "github.com/emilianobovetti/grampa/source/json"
	yamlsrc "github.com/emilianobovetti/grampa/source/yaml"
)

// Format names an input encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnknownFormat is returned for format names or values this package does
// not decode.
var ErrUnknownFormat = errors.New("source: unknown format")

// ParseFormat maps "json", "yaml" and "yml" (case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Decoder yields one document per call to Next and io.EOF at the end.
type Decoder interface {
	Next() (any, error)
}

// NewDecoder returns a streaming decoder for f over r.
func NewDecoder(f Format, r io.Reader) (Decoder, error) {
	switch f {
	case JSON:
		return jsonsrc.NewDecoder(r), nil
	case YAML:
		return yamlsrc.NewDecoder(r), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Decode reads every document of format f from r.
func Decode(f Format, r io.Reader) ([]any, error) {
	switch f {
	case JSON:
		return jsonsrc.Decode(r)
	case YAML:
		return yamlsrc.Decode(r)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// DecodeBytes is Decode over b.
func DecodeBytes(f Format, b []byte) ([]any, error) { return Decode(f, bytes.NewReader(b)) }

package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/mathpad/linalg"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(result *linalg.Result) error
}

// Names lists the output formats accepted by NewEncoder.
var Names = []string{"text", "json", "line"}

// NewEncoder returns the encoder registered under name.
func NewEncoder(name string, w io.Writer, opts ...Option) (Encoder, error) {
	switch name {
	case "text":
		return NewTextEncoder(w, opts...), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s (expected text, json, or line)", name)
}

// IsKnown reports whether name is one of Names.
func IsKnown(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

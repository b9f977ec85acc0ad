package codec

import (
	"fmt"
	"io"
	"strings"
)

// Decoder reads values from a serialized form
type Decoder interface {
	Decode(r io.Reader, v any) error
	Format() string
}

// Encoder writes values in a serialized form
type Encoder interface {
	Encode(w io.Writer, v any) error
	Format() string
}

// Codec both reads and writes one format
type Codec interface {
	Decoder
	Encoder
}

// ForFormat returns the codec for a format name
func ForFormat(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q, must be 'json' or 'yaml'", format)
	}
}

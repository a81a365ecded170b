package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// Encoder writes a rendered frame in some image format
type Encoder interface {
	Encode(w io.Writer, f *renderer.Frame) error
	ContentType() string
	Extension() string
}

// Format names a supported output format
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ParseFormat validates a format name, ignoring case
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPPM, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want ppm or png)", s)
	}
}

// EncoderFor returns the encoder for a format
func EncoderFor(format Format, mapping ColorMapping, order RowOrder) (Encoder, error) {
	switch format {
	case FormatPPM:
		return &PPMEncoder{Mapping: mapping, RowOrder: order}, nil
	case FormatPNG:
		return &PNGEncoder{Mapping: mapping}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

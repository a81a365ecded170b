package output

import (
	"fmt"
	"image/png"
	"io"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// PNGEncoder writes frames as 8-bit PNG
type PNGEncoder struct {
	Mapping ColorMapping
}

// Encode converts the frame and writes it as PNG
func (e *PNGEncoder) Encode(w io.Writer, f *renderer.Frame) error {
	if err := png.Encode(w, e.Mapping.ToImage(f)); err != nil {
		return fmt.Errorf("failed to write png: %w", err)
	}
	return nil
}

func (e *PNGEncoder) ContentType() string { return "image/png" }

func (e *PNGEncoder) Extension() string { return ".png" }

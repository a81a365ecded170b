package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// RowOrder selects which image row a PPM file starts with
type RowOrder int

const (
	TopDown  RowOrder = iota // top scanline first, as image viewers expect
	BottomUp                 // bottom scanline first
)

// ParseRowOrder accepts "top-down" or "bottom-up"
func ParseRowOrder(s string) (RowOrder, error) {
	switch s {
	case "top-down", "":
		return TopDown, nil
	case "bottom-up":
		return BottomUp, nil
	default:
		return TopDown, fmt.Errorf("unknown row order %q (want top-down or bottom-up)", s)
	}
}

func (o RowOrder) String() string {
	if o == BottomUp {
		return "bottom-up"
	}
	return "top-down"
}

// PPMEncoder writes plain-text P3 images with one "r g b" line per pixel
type PPMEncoder struct {
	Mapping  ColorMapping
	RowOrder RowOrder
}

// Encode writes the header followed by every pixel
func (e *PPMEncoder) Encode(w io.Writer, f *renderer.Frame) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height)

	for n := 0; n < f.Height; n++ {
		y := n
		if e.RowOrder == BottomUp {
			y = f.Height - 1 - n
		}
		for _, c := range f.Row(y) {
			r, g, b := e.Mapping.Channels(c)
			fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ppm: %w", err)
	}
	return nil
}

func (e *PPMEncoder) ContentType() string { return "image/x-portable-pixmap" }

func (e *PPMEncoder) Extension() string { return ".ppm" }

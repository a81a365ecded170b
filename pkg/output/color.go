package output

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// maxChannel keeps floor(256*c) inside a byte
const maxChannel = 0.999

// ColorMapping converts linear radiance into 8-bit display values
type ColorMapping struct {
	Gamma float64 // 2 applies a square root, 1 leaves values linear
}

// DefaultMapping returns the gamma 2 mapping
func DefaultMapping() ColorMapping {
	return ColorMapping{Gamma: 2.0}
}

// Channels returns the 0-255 value of each channel of c
func (m ColorMapping) Channels(c core.Vec3) (r, g, b int) {
	gamma := m.Gamma
	if gamma <= 0 {
		gamma = 1.0
	}
	// Negative radiance has no root; treat it as black
	c = c.Clamp(0, math.Inf(1)).GammaCorrect(gamma).Clamp(0, maxChannel)
	return toByte(c.X), toByte(c.Y), toByte(c.Z)
}

// RGBA converts c to an opaque color
func (m ColorMapping) RGBA(c core.Vec3) color.RGBA {
	r, g, b := m.Channels(c)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

// ToImage converts a frame into an RGBA image, row 0 at the top
func (m ColorMapping) ToImage(f *renderer.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x, c := range f.Row(y) {
			img.SetRGBA(x, y, m.RGBA(c))
		}
	}
	return img
}

func toByte(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Floor(256 * v))
}

package output

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

func TestColorMapping_Channels(t *testing.T) {
	tests := []struct {
		name    string
		gamma   float64
		input   core.Vec3
		r, g, b int
	}{
		{"Black", 2.0, core.NewVec3(0, 0, 0), 0, 0, 0},
		{"White clamps below 256", 2.0, core.NewVec3(1, 1, 1), 255, 255, 255},
		{"Overexposed", 2.0, core.NewVec3(4, 10, 100), 255, 255, 255},
		{"Square root", 2.0, core.NewVec3(0.25, 0.0625, 0.5), 128, 64, 181},
		{"Negative is black", 2.0, core.NewVec3(-0.5, -1, 0), 0, 0, 0},
		{"Linear", 1.0, core.NewVec3(0.25, 0.5, 0.75), 64, 128, 192},
		{"NaN is black", 2.0, core.NewVec3(math.NaN(), 0.25, 0), 0, 128, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ColorMapping{Gamma: tt.gamma}
			r, g, b := m.Channels(tt.input)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Channels(%v) = (%d, %d, %d), expected (%d, %d, %d)",
					tt.input, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestColorMapping_ToImage(t *testing.T) {
	f := renderer.NewFrame(2, 2)
	f.Set(1, 0, core.NewVec3(1, 0, 0))
	f.Set(0, 1, core.NewVec3(0, 0, 1))

	img := DefaultMapping().ToImage(f)
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("Expected 2x2 image, got %v", b)
	}

	if c := img.RGBAAt(1, 0); c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("Expected opaque red at (1,0), got %v", c)
	}
	if c := img.RGBAAt(0, 1); c.R != 0 || c.B != 255 {
		t.Errorf("Expected blue at (0,1), got %v", c)
	}
}

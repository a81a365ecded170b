package renderer

import (
	"math"
	"os"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

func TestPixelStats_Average(t *testing.T) {
	var ps PixelStats
	if c := ps.GetColor(); c != (core.Vec3{}) {
		t.Errorf("Expected black with no samples, got %v", c)
	}

	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))
	ps.AddSample(core.NewVec3(0, 0, 1))
	ps.AddSample(core.NewVec3(1, 1, 1))

	expected := core.NewVec3(0.5, 0.5, 0.5)
	if c := ps.GetColor(); !c.ApproxEquals(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, c)
	}
	if ps.SampleCount != 4 {
		t.Errorf("Expected 4 samples, got %d", ps.SampleCount)
	}
}

func TestPixelStats_Variance(t *testing.T) {
	var ps PixelStats
	for i := 0; i < 10; i++ {
		ps.AddSample(core.NewVec3(0.3, 0.3, 0.3))
	}
	if v := ps.Variance(); v > 1e-12 {
		t.Errorf("Expected zero variance for constant samples, got %g", v)
	}

	var mixed PixelStats
	mixed.AddSample(core.NewVec3(0, 0, 0))
	mixed.AddSample(core.NewVec3(1, 1, 1))
	// luminance 0 and 1: variance 0.25
	if v := mixed.Variance(); math.Abs(v-0.25) > 1e-9 {
		t.Errorf("Expected variance 0.25, got %g", v)
	}
}

func TestFrame_Layout(t *testing.T) {
	frame := NewFrame(3, 2)
	frame.Set(2, 0, core.NewVec3(1, 0, 0))
	frame.Set(0, 1, core.NewVec3(0, 1, 0))

	if !frame.Pixels[2].Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected (2,0) at index 2, got %v", frame.Pixels[2])
	}
	if !frame.Pixels[3].Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected (0,1) at index 3, got %v", frame.Pixels[3])
	}

	row := frame.Row(1)
	if len(row) != 3 || !row[0].Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Unexpected row 1: %v", row)
	}
}

func TestFrame_AverageLuminance(t *testing.T) {
	frame := NewFrame(2, 2)
	frame.Set(0, 0, core.NewVec3(1, 1, 1))
	frame.Set(1, 1, core.NewVec3(1, 1, 1))

	if lum := frame.AverageLuminance(); math.Abs(lum-0.5) > 1e-9 {
		t.Errorf("Expected average luminance 0.5, got %f", lum)
	}
}

func TestNewDefaultLogger_WritesToStderr(t *testing.T) {
	dl, ok := NewDefaultLogger().(*DefaultLogger)
	if !ok {
		t.Fatalf("Expected *DefaultLogger, got %T", NewDefaultLogger())
	}
	if dl.out != os.Stderr {
		t.Error("Default logger should write to stderr")
	}
}

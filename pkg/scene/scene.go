package scene

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
)

// Scene contains all the elements needed for rendering.
// It is read-only once rendering starts.
type Scene struct {
	Camera         *geometry.Camera
	World          *geometry.HittableList // Objects in the scene
	Background     integrator.Background  // Radiance for rays that escape
	SamplingConfig SamplingConfig
	CameraConfig   geometry.CameraConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// Options carries the caller's image and camera settings into a scene builder
type Options struct {
	Sampling SamplingConfig
	Camera   geometry.CameraConfig
}

// DefaultOptions returns a 400px wide 16:9 image at 100 samples and depth 50
func DefaultOptions() Options {
	camera := geometry.DefaultCameraConfig()
	width := 400
	return Options{
		Sampling: SamplingConfig{
			Width:           width,
			Height:          ImageHeight(width, camera.AspectRatio),
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
		Camera: camera,
	}
}

// ImageHeight derives the pixel height for a width and aspect ratio
func ImageHeight(width int, aspectRatio float64) int {
	return max(1, int(math.Round(float64(width)/aspectRatio)))
}

// newScene assembles a scene from options and the given objects
func newScene(opts Options, objects ...geometry.Hittable) *Scene {
	return &Scene{
		Camera:         geometry.NewCamera(opts.Camera),
		World:          geometry.NewHittableList(objects...),
		Background:     integrator.NewSkyGradient(),
		SamplingConfig: opts.Sampling,
		CameraConfig:   opts.Camera,
	}
}

// GetPrimitiveCount returns the number of top-level objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}

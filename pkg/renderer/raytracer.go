package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// Raytracer handles the rendering process
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	sampler    core.Sampler
	logger     core.Logger
	config     scene.SamplingConfig
}

// NewRaytracer creates a raytracer for the scene. The sampler is owned by
// the raytracer for the duration of a render.
func NewRaytracer(sc *scene.Scene, integ integrator.Integrator, sampler core.Sampler, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Raytracer{
		scene:      sc,
		integrator: integ,
		sampler:    sampler,
		logger:     logger,
		config:     sc.SamplingConfig,
	}
}

// NewPathTracer creates a raytracer using path tracing with the scene's
// depth limit and background
func NewPathTracer(sc *scene.Scene, sampler core.Sampler, logger core.Logger) *Raytracer {
	pt := integrator.NewPathTracingIntegrator(sc.SamplingConfig.MaxDepth)
	if sc.Background != nil {
		pt.Background = sc.Background
	}
	return NewRaytracer(sc, pt, sampler, logger)
}

// Render traces every pixel and returns the averaged linear colors.
// Scanlines run from the top of the image down; ctx is checked between them.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	start := time.Now()
	width, height := rt.config.Width, rt.config.Height
	frame := NewFrame(width, height)
	stats := RenderStats{TotalPixels: width * height}
	varianceSum := 0.0

	for j := height - 1; j >= 0; j-- {
		if err := ctx.Err(); err != nil {
			return nil, stats, fmt.Errorf("render cancelled at scanline %d: %w", j, err)
		}
		rt.logger.Printf("Scanlines remaining: %d\n", j)

		for i := 0; i < width; i++ {
			var ps PixelStats
			rt.samplePixel(i, j, &ps)
			stats.TotalSamples += ps.SampleCount
			varianceSum += ps.Variance()

			// j counts up from the bottom; frame rows count down from the top
			frame.Set(i, height-1-j, ps.GetColor())
		}
	}
	rt.logger.Printf("Done\n")

	stats.Duration = time.Since(start)
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
		stats.AverageVariance = varianceSum / float64(stats.TotalPixels)
	}
	stats.AverageLuminance = frame.AverageLuminance()
	return frame, stats, nil
}

// samplePixel takes SamplesPerPixel jittered samples for pixel (i, j),
// with j measured from the bottom row
func (rt *Raytracer) samplePixel(i, j int, ps *PixelStats) {
	camera := rt.scene.Camera
	world := rt.scene.World

	// A single-pixel axis maps to the lower-left edge rather than dividing by zero
	uScale := float64(max(1, rt.config.Width-1))
	vScale := float64(max(1, rt.config.Height-1))

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		u := (float64(i) + rt.sampler.Get1D()) / uScale
		v := (float64(j) + rt.sampler.Get1D()) / vScale

		ray := camera.GetRay(u, v)
		ps.AddSample(rt.integrator.RayColor(ray, world, rt.sampler))
	}
}

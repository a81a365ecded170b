package integrator

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Background supplies the radiance of rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// SkyGradient blends vertically between Bottom and Top by ray direction
type SkyGradient struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewSkyGradient returns the white-to-sky-blue gradient
func NewSkyGradient() SkyGradient {
	return SkyGradient{
		Top:    core.NewVec3(0.5, 0.7, 1.0), // sky blue
		Bottom: core.NewVec3(1.0, 1.0, 1.0), // white
	}
}

// Color returns a gradient color based on ray direction
func (g SkyGradient) Color(r core.Ray) core.Vec3 {
	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return g.Bottom.Lerp(g.Top, t)
}

// SolidBackground returns the same color in every direction
type SolidBackground core.Vec3

// Color implements Background
func (s SolidBackground) Color(r core.Ray) core.Vec3 {
	return core.Vec3(s)
}

package integrator

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
)

// NormalIntegrator shades each hit by its surface normal mapped to [0,1].
// Useful for checking geometry without any light transport.
type NormalIntegrator struct {
	Background Background
}

// NewNormalIntegrator creates a normal visualizer with the sky gradient background
func NewNormalIntegrator() *NormalIntegrator {
	return &NormalIntegrator{Background: NewSkyGradient()}
}

// RayColor returns 0.5*(normal+1) for hits and the background otherwise
func (ni *NormalIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	hit, isHit := world.Hit(ray, 0, math.Inf(1))
	if !isHit {
		return ni.Background.Color(ray)
	}
	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}

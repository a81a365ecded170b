package scene

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// NewDefaultScene creates the four-sphere scene: a diffuse ground, a diffuse
// center sphere and two metal spheres with different fuzz
func NewDefaultScene(opts Options) *Scene {
	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	materialLeft := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	return newScene(opts,
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, materialCenter),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialLeft),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialRight),
	)
}

// NewDiffuseScene creates a single diffuse sphere resting on a diffuse ground.
// Both spheres share one material.
func NewDiffuseScene(opts Options) *Scene {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	return newScene(opts,
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
	)
}

// NewSingleSphereScene creates one diffuse sphere in front of the camera
func NewSingleSphereScene(opts Options) *Scene {
	center := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))

	return newScene(opts,
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
	)
}

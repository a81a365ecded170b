package geometry

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// Hittable interface for objects that can be hit by rays.
// Hit reports at most one intersection, the nearest with t in [tMin, tMax].
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

// NormalMode selects how a shape orients the normal stored in its hit records
type NormalMode int

const (
	// FaceNormals flips the normal so it always opposes the incoming ray
	FaceNormals NormalMode = iota
	// OutwardNormals stores the geometric outward normal unchanged
	OutwardNormals
)

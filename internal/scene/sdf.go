// Package scene evaluates signed distances to the renderable geometry.
//
// Distances are negative inside a surface, zero on it and positive outside.
package scene

import (
	"github.com/chewxy/math32"

	"sdfterm/internal/mathutil"
)

// SDF is anything that can be sampled as a signed distance field.
type SDF interface {
	Distance(p mathutil.Vec3) float32
}

// Func adapts a plain function into an SDF.
type Func func(mathutil.Vec3) float32

func (f Func) Distance(p mathutil.Vec3) float32 { return f(p) }

// Sphere is a sphere of Radius around Center.
type Sphere struct {
	Center mathutil.Vec3
	Radius float32
}

func (s Sphere) Distance(p mathutil.Vec3) float32 {
	return p.Sub(s.Center).Len() - s.Radius
}

// Scene is the union of its primitives.
type Scene []SDF

// Distance returns the minimum distance over all primitives, +Inf when empty.
func (s Scene) Distance(p mathutil.Vec3) float32 {
	d := math32.Inf(1)
	for _, prim := range s {
		if pd := prim.Distance(p); pd < d {
			d = pd
		}
	}
	return d
}

// DefaultRadius is the radius of the sphere in the default scene.
const DefaultRadius = 0.2

// Default returns the single sphere of radius 0.2 at the origin.
func Default() Scene {
	return Scene{Sphere{Radius: DefaultRadius}}
}

// Normal estimates the unit surface normal at p by central differences.
// It returns the zero vector where the gradient vanishes.
func Normal(f SDF, p mathutil.Vec3, eps float32) mathutil.Vec3 {
	dx := mathutil.Vec3{X: eps}
	dy := mathutil.Vec3{Y: eps}
	dz := mathutil.Vec3{Z: eps}
	n := mathutil.Vec3{
		X: f.Distance(p.Add(dx)) - f.Distance(p.Sub(dx)),
		Y: f.Distance(p.Add(dy)) - f.Distance(p.Sub(dy)),
		Z: f.Distance(p.Add(dz)) - f.Distance(p.Sub(dz)),
	}
	n.Normalize()
	return n
}

package raster

import (
	"sdfterm/internal/mathutil"
	"sdfterm/internal/scene"
)

// Outcome is the state of a single marching ray.
type Outcome uint8

const (
	Marching Outcome = iota
	Hit
	Escaped
	Exhausted
	Degenerate // zero-length direction, never marched
)

func (o Outcome) String() string {
	switch o {
	case Marching:
		return "marching"
	case Hit:
		return "hit"
	case Escaped:
		return "escaped"
	case Exhausted:
		return "exhausted"
	case Degenerate:
		return "degenerate"
	}
	return "unknown"
}

// Marcher sphere-traces rays through an SDF.
type Marcher struct {
	Scene        scene.SDF
	MaxSteps     int
	HitEpsilon   float32
	EscapeRadius float32
}

// Result is where and how a ray stopped.
type Result struct {
	Outcome Outcome
	Pos     mathutil.Vec3
	Steps   int
}

// March advances origin along dir until the ray hits, escapes or runs out of steps.
// dir is expected to be unit length; a zero dir yields Degenerate.
func (m Marcher) March(origin, dir mathutil.Vec3) Result {
	if dir == (mathutil.Vec3{}) {
		return Result{Outcome: Degenerate, Pos: origin}
	}

	pos := origin
	for i := 0; i < m.MaxSteps; i++ {
		if pos.MaxAbs() > m.EscapeRadius {
			return Result{Outcome: Escaped, Pos: pos, Steps: i}
		}

		dist := m.Scene.Distance(pos)
		if dist < m.HitEpsilon {
			return Result{Outcome: Hit, Pos: pos, Steps: i}
		}

		// No surface is closer than dist, so the step cannot overshoot.
		pos = pos.Add(dir.Scale(dist))
	}
	return Result{Outcome: Exhausted, Pos: pos, Steps: m.MaxSteps}
}

package raster

import (
	"github.com/chewxy/math32"

	"sdfterm/internal/mathutil"
	"sdfterm/internal/scene"
)

// Shader picks the glyph for a hit point at animation time t.
type Shader interface {
	Shade(p mathutil.Vec3, t float32) byte
}

// ConstantShader ignores the hit point and always returns Glyph.
type ConstantShader struct {
	Glyph byte
}

// NewConstantShader shades every hit with the densest glyph of p.
func NewConstantShader(p Palette) ConstantShader {
	return ConstantShader{Glyph: p.Densest()}
}

func (s ConstantShader) Shade(mathutil.Vec3, float32) byte { return s.Glyph }

// LightConfig holds the orbiting light used by LitShader.
type LightConfig struct {
	Base      mathutil.Vec3 // light position at t = 0, rotated about Y by t radians
	NormalEps float32       // central-difference step for surface normals
}

// DefaultLightConfig returns a light 50 units out and 20 up, orbiting once per 2π seconds.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		Base:      mathutil.Vec3{Y: 20, Z: 50},
		NormalEps: 1e-4,
	}
}

// LightDir returns the unit light direction at time t.
func (lc LightConfig) LightDir(t float32) mathutil.Vec3 {
	return mathutil.RotY(t).MulVec3(lc.Base).Normalized()
}

// LitShader maps Lambertian diffuse onto the palette.
type LitShader struct {
	Scene   scene.SDF
	Palette Palette
	Light   LightConfig
}

func NewLitShader(s scene.SDF, p Palette) LitShader {
	return LitShader{Scene: s, Palette: p, Light: DefaultLightConfig()}
}

func (s LitShader) Shade(p mathutil.Vec3, t float32) byte {
	n := scene.Normal(s.Scene, p, s.Light.NormalEps)
	if n == (mathutil.Vec3{}) {
		return s.Palette[0]
	}

	// Remap [-1, 1] onto the ramp; a fully lit facet wraps to the first glyph.
	diffuse := (s.Light.LightDir(t).Dot(n) + 1) / 2 * float32(len(s.Palette))
	return s.Palette.At(int(math32.Floor(diffuse)))
}

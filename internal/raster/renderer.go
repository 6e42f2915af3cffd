package raster

import (
	"errors"
	"fmt"

	"sdfterm/internal/batch"
	"sdfterm/internal/mathutil"
	"sdfterm/internal/scene"
)

// ErrSize is returned when a frame buffer does not match the render grid.
var ErrSize = errors.New("raster: frame buffer size mismatch")

// Params fixes the camera and the march limits for one render grid.
type Params struct {
	Width        int
	Height       int
	Camera       mathutil.Vec3
	ImagePlaneZ  float32
	MaxSteps     int
	HitEpsilon   float32
	EscapeRadius float32
}

// DefaultParams returns the 40×20 grid looking down +Z from (0, 0, -3).
func DefaultParams() Params {
	return Params{
		Width:        40,
		Height:       20,
		Camera:       mathutil.Vec3{Z: -3},
		ImagePlaneZ:  -1.5,
		MaxSteps:     150,
		HitEpsilon:   1e-6,
		EscapeRadius: 99,
	}
}

// Target maps a pixel onto the virtual image plane.
// Pixel (0, 0) is the plane's top-left corner; y is aspect-corrected.
func (p Params) Target(col, row int) mathutil.Vec3 {
	w, h := float32(p.Width), float32(p.Height)
	return mathutil.Vec3{
		X: float32(col)/w - 0.5,
		Y: (float32(row)/h - 0.5) * (h / w) * 1.5,
		Z: p.ImagePlaneZ,
	}
}

// Ray returns the unit direction from the camera through pixel (col, row),
// or the zero vector when the target coincides with the camera.
func (p Params) Ray(col, row int) mathutil.Vec3 {
	ray := p.Target(col, row).Sub(p.Camera)
	ray.Normalize()
	return ray
}

// DegenerateRay reports the first pixel whose ray has no direction,
// i.e. whose image-plane target coincides with the camera.
func (p Params) DegenerateRay() (col, row int, ok bool) {
	for row = 0; row < p.Height; row++ {
		for col = 0; col < p.Width; col++ {
			if p.Ray(col, row) == (mathutil.Vec3{}) {
				return col, row, true
			}
		}
	}
	return 0, 0, false
}

// Renderer fills frame buffers by raymarching every pixel.
type Renderer struct {
	Params  Params
	Scene   scene.SDF
	Shader  Shader
	Palette Palette
	Workers int // rows are split across workers when > 1
}

// NewRenderer returns a single-threaded renderer with the default palette.
func NewRenderer(p Params, s scene.SDF, sh Shader) *Renderer {
	return &Renderer{
		Params:  p,
		Scene:   s,
		Shader:  sh,
		Palette: DefaultPalette,
		Workers: 1,
	}
}

func (r *Renderer) marcher() Marcher {
	return Marcher{
		Scene:        r.Scene,
		MaxSteps:     r.Params.MaxSteps,
		HitEpsilon:   r.Params.HitEpsilon,
		EscapeRadius: r.Params.EscapeRadius,
	}
}

// Render overwrites every cell of fb. t is the animation time handed to the shader.
// All rows are written before Render returns.
func (r *Renderer) Render(fb *FrameBuffer, t float32) error {
	if fb.Width != r.Params.Width || fb.Height != r.Params.Height || len(fb.Cells) != fb.Width*fb.Height {
		return fmt.Errorf("%w: buffer %dx%d, grid %dx%d", ErrSize, fb.Width, fb.Height, r.Params.Width, r.Params.Height)
	}

	m := r.marcher()
	if r.Workers <= 1 {
		for row := 0; row < r.Params.Height; row++ {
			r.renderRow(m, fb, row, t)
		}
		return nil
	}

	batch.Run(r.Workers, r.Params.Height, func(row int) {
		r.renderRow(m, fb, row, t)
	})
	return nil
}

func (r *Renderer) renderRow(m Marcher, fb *FrameBuffer, row int, t float32) {
	cells := fb.Row(row)
	for col := range cells {
		cells[col], _ = r.pixel(m, col, row, t)
	}
}

// Pixel marches a single pixel and returns its glyph and outcome.
func (r *Renderer) Pixel(col, row int, t float32) (byte, Outcome) {
	return r.pixel(r.marcher(), col, row, t)
}

func (r *Renderer) pixel(m Marcher, col, row int, t float32) (byte, Outcome) {
	res := m.March(r.Params.Camera, r.Params.Ray(col, row))
	if res.Outcome == Hit {
		return r.Shader.Shade(res.Pos, t), res.Outcome
	}
	return r.Palette.Background(), res.Outcome
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"sdfterm/internal/mathutil"
	"sdfterm/internal/raster"
	"sdfterm/internal/scene"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Shader and presenter names.
const (
	ShaderConstant = "constant"
	ShaderLit      = "lit"

	PresenterANSI   = "ansi"
	PresenterScreen = "screen"
)

// Config holds the render grid, scene and loop settings.
type Config struct {
	// Grid and camera
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	Camera      *mathutil.Vec3 `json:"camera,omitempty"`
	ImagePlaneZ *float32       `json:"image_plane_z,omitempty"`

	// Scene
	SphereCenter mathutil.Vec3 `json:"sphere_center"`
	SphereRadius float32       `json:"sphere_radius"`

	// March limits
	MaxSteps     int     `json:"max_steps"`
	HitEpsilon   float32 `json:"hit_epsilon"`
	EscapeRadius float32 `json:"escape_radius"`

	// Loop
	Workers    int    `json:"workers"`
	IntervalMS int    `json:"interval_ms"`
	Shader     string `json:"shader"`
	Presenter  string `json:"presenter"`
}

// Default returns the reference 40×20 single-sphere setup.
func Default() Config {
	p := raster.DefaultParams()
	cam, z := p.Camera, p.ImagePlaneZ
	return Config{
		Width:        p.Width,
		Height:       p.Height,
		Camera:       &cam,
		ImagePlaneZ:  &z,
		SphereRadius: scene.DefaultRadius,
		MaxSteps:     p.MaxSteps,
		HitEpsilon:   p.HitEpsilon,
		EscapeRadius: p.EscapeRadius,
		Workers:      1,
		IntervalMS:   1000,
		Shader:       ShaderConstant,
		Presenter:    PresenterANSI,
	}
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI flags and fills empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Interval > 0 {
		c.IntervalMS = int(flags.Interval / time.Millisecond)
	}
	if flags.Shader != "" {
		c.Shader = flags.Shader
	}
	if flags.Presenter != "" {
		c.Presenter = flags.Presenter
	}

	d := Default()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.Camera == nil {
		c.Camera = d.Camera
	}
	if c.ImagePlaneZ == nil {
		c.ImagePlaneZ = d.ImagePlaneZ
	}
	// Zero radius means unset.
	if c.SphereRadius == 0 {
		c.SphereRadius = d.SphereRadius
	}
	if c.MaxSteps == 0 {
		c.MaxSteps = d.MaxSteps
	}
	if c.HitEpsilon == 0 {
		c.HitEpsilon = d.HitEpsilon
	}
	if c.EscapeRadius == 0 {
		c.EscapeRadius = d.EscapeRadius
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.IntervalMS <= 0 {
		c.IntervalMS = d.IntervalMS
	}
	if c.Shader == "" {
		c.Shader = d.Shader
	}
	if c.Presenter == "" {
		c.Presenter = d.Presenter
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Workers   int
	Interval  time.Duration
	Shader    string
	Presenter string
}

// Validate reports the first setting that cannot produce a frame.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Camera == nil || c.ImagePlaneZ == nil:
		return fmt.Errorf("%w: camera not resolved", ErrInvalid)
	case c.SphereRadius < 0:
		return fmt.Errorf("%w: sphere radius %v", ErrInvalid, c.SphereRadius)
	case c.MaxSteps <= 0:
		return fmt.Errorf("%w: max steps %d", ErrInvalid, c.MaxSteps)
	case c.HitEpsilon <= 0:
		return fmt.Errorf("%w: hit epsilon %v", ErrInvalid, c.HitEpsilon)
	case c.EscapeRadius <= 0:
		return fmt.Errorf("%w: escape radius %v", ErrInvalid, c.EscapeRadius)
	case c.Shader != ShaderConstant && c.Shader != ShaderLit:
		return fmt.Errorf("%w: shader %q", ErrInvalid, c.Shader)
	case c.Presenter != PresenterANSI && c.Presenter != PresenterScreen:
		return fmt.Errorf("%w: presenter %q", ErrInvalid, c.Presenter)
	}
	if col, row, ok := c.Params().DegenerateRay(); ok {
		return fmt.Errorf("%w: camera %v sits on the target of pixel (%d, %d)", ErrInvalid, *c.Camera, col, row)
	}
	return nil
}

// Interval is the pause between frames.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// Params returns the raster parameters. Call Resolve first.
func (c Config) Params() raster.Params {
	return raster.Params{
		Width:        c.Width,
		Height:       c.Height,
		Camera:       *c.Camera,
		ImagePlaneZ:  *c.ImagePlaneZ,
		MaxSteps:     c.MaxSteps,
		HitEpsilon:   c.HitEpsilon,
		EscapeRadius: c.EscapeRadius,
	}
}

// Scene returns the configured one-sphere scene.
func (c Config) Scene() scene.Scene {
	return scene.Scene{scene.Sphere{Center: c.SphereCenter, Radius: c.SphereRadius}}
}

// Renderer builds a renderer for the resolved config.
func (c Config) Renderer() *raster.Renderer {
	s := c.Scene()
	var sh raster.Shader = raster.NewConstantShader(raster.DefaultPalette)
	if c.Shader == ShaderLit {
		sh = raster.NewLitShader(s, raster.DefaultPalette)
	}
	r := raster.NewRenderer(c.Params(), s, sh)
	r.Workers = c.Workers
	return r
}

package raster

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"

	"sdfterm/internal/mathutil"
	"sdfterm/internal/scene"
)

func newDefaultRenderer() *Renderer {
	return NewRenderer(DefaultParams(), scene.Default(), NewConstantShader(DefaultPalette))
}

func defaultMarcher() Marcher {
	p := DefaultParams()
	return Marcher{
		Scene:        scene.Default(),
		MaxSteps:     p.MaxSteps,
		HitEpsilon:   p.HitEpsilon,
		EscapeRadius: p.EscapeRadius,
	}
}

func TestTarget(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		name     string
		col, row int
		want     mathutil.Vec3
	}{
		{"Top-left", 0, 0, mathutil.Vec3{X: -0.5, Y: -0.375, Z: -1.5}},
		{"Centre", 20, 10, mathutil.Vec3{X: 0, Y: 0, Z: -1.5}},
		{"Bottom-right", 39, 19, mathutil.Vec3{X: 0.475, Y: 0.3375, Z: -1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Target(tt.col, tt.row)
			if got.Sub(tt.want).Len() > 1e-6 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	if ray := p.Ray(20, 10); ray != (mathutil.Vec3{Z: 1}) {
		t.Errorf("Expected centre ray (0,0,1), got %v", ray)
	}
}

func TestCenterPixelHits(t *testing.T) {
	r := newDefaultRenderer()
	glyph, outcome := r.Pixel(20, 10, 0)
	if outcome != Hit {
		t.Fatalf("Expected hit, got %v", outcome)
	}
	if glyph != '#' {
		t.Errorf("Expected '#', got %q", glyph)
	}

	res := defaultMarcher().March(r.Params.Camera, r.Params.Ray(20, 10))
	if res.Steps >= r.Params.MaxSteps {
		t.Errorf("Expected hit within %d steps, took %d", r.Params.MaxSteps, res.Steps)
	}
	if d := scene.Default().Distance(res.Pos); d >= 1e-6 {
		t.Errorf("Expected hit point on surface, distance %v", d)
	}
}

func TestMarchOutcomes(t *testing.T) {
	cam := mathutil.Vec3{Z: -3}

	tests := []struct {
		name     string
		marcher  func() Marcher
		dir      mathutil.Vec3
		want     Outcome
		maxSteps int
	}{
		{"Away from scene escapes", defaultMarcher, mathutil.Vec3{Z: -1}, Escaped, 150},
		{"Sideways escapes", defaultMarcher, mathutil.Vec3{X: 1}, Escaped, 150},
		{"Towards sphere hits", defaultMarcher, mathutil.Vec3{Z: 1}, Hit, 150},
		{"Step budget exhausted", func() Marcher {
			m := defaultMarcher()
			m.MaxSteps = 1
			return m
		}, mathutil.Vec3{Z: 1}, Exhausted, 1},
		{"Zero direction", defaultMarcher, mathutil.Vec3{}, Degenerate, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.marcher().March(cam, tt.dir)
			if res.Outcome != tt.want {
				t.Fatalf("Expected %v, got %v at %v", tt.want, res.Outcome, res.Pos)
			}
			if res.Steps > tt.maxSteps {
				t.Errorf("Expected at most %d steps, got %d", tt.maxSteps, res.Steps)
			}
			if res.Outcome == Escaped && res.Pos.MaxAbs() <= 99 {
				t.Errorf("Escaped ray still inside radius: %v", res.Pos)
			}
		})
	}
}

func TestRenderFillsEveryCell(t *testing.T) {
	r := newDefaultRenderer()
	fb := NewFrameBuffer(40, 20)
	if err := r.Render(fb, 0); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(fb.Cells) != 800 {
		t.Fatalf("Expected 800 cells, got %d", len(fb.Cells))
	}
	for i, c := range fb.Cells {
		if !DefaultPalette.Contains(c) {
			t.Fatalf("Cell %d holds %q, not a palette glyph", i, c)
		}
		if c != '.' && c != '#' {
			t.Errorf("Cell %d: expected '.' or '#', got %q", i, c)
		}
	}
}

func TestRenderScenario(t *testing.T) {
	r := newDefaultRenderer()
	fb := NewFrameBuffer(40, 20)
	if err := r.Render(fb, 0); err != nil {
		t.Fatalf("Render: %v", err)
	}

	hits := fb.Count(func(c byte) bool { return c != DefaultPalette.Background() })
	if hits == 0 || hits >= 40*20 {
		t.Fatalf("Expected sphere to cover a strict subset of the frame, got %d cells", hits)
	}
	if fb.At(20, 10) != '#' {
		t.Errorf("Expected centre cell '#', got %q", fb.At(20, 10))
	}
	for _, c := range [][2]int{{0, 0}, {39, 0}, {0, 19}, {39, 19}} {
		if got := fb.At(c[0], c[1]); got != '.' {
			t.Errorf("Expected corner %v to be background, got %q", c, got)
		}
	}

	// The cluster sits around the centre of the grid.
	var sumX, sumY int
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.At(x, y) == '#' {
				sumX += x
				sumY += y
			}
		}
	}
	cx, cy := float32(sumX)/float32(hits), float32(sumY)/float32(hits)
	if math32.Abs(cx-20) > 2 || math32.Abs(cy-10) > 2 {
		t.Errorf("Expected cluster centroid near (20, 10), got (%.1f, %.1f)", cx, cy)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	r := newDefaultRenderer()
	a := NewFrameBuffer(40, 20)
	b := NewFrameBuffer(40, 20)
	if err := r.Render(a, 0); err != nil {
		t.Fatal(err)
	}
	if err := r.Render(b, 0); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("Expected identical frames:\n%s\nvs\n%s", a, b)
	}

	// Rendering over a previous frame must not depend on its contents.
	if err := r.Render(a, 0); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("Expected re-render into a used buffer to match")
	}
}

func TestParallelRenderMatchesSerial(t *testing.T) {
	serial := newDefaultRenderer()
	want := NewFrameBuffer(40, 20)
	if err := serial.Render(want, 0); err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{2, 4, 7, 64} {
		r := newDefaultRenderer()
		r.Workers = workers
		got := NewFrameBuffer(40, 20)
		if err := r.Render(got, 0); err != nil {
			t.Fatal(err)
		}
		if !got.Equal(want) {
			t.Errorf("Workers=%d: frame differs from serial render", workers)
		}
	}
}

func TestRenderSizeMismatch(t *testing.T) {
	r := newDefaultRenderer()
	err := r.Render(NewFrameBuffer(10, 10), 0)
	if !errors.Is(err, ErrSize) {
		t.Errorf("Expected ErrSize, got %v", err)
	}
}

func TestAlternateScene(t *testing.T) {
	p := DefaultParams()
	p.Width, p.Height = 80, 40
	big := scene.Scene{scene.Sphere{Radius: 0.2}, scene.Sphere{Center: mathutil.Vec3{X: 0.6}, Radius: 0.2}}
	r := NewRenderer(p, big, NewConstantShader(DefaultPalette))
	fb := NewFrameBuffer(80, 40)
	if err := r.Render(fb, 0); err != nil {
		t.Fatal(err)
	}

	single := NewRenderer(p, scene.Default(), NewConstantShader(DefaultPalette))
	fb1 := NewFrameBuffer(80, 40)
	if err := single.Render(fb1, 0); err != nil {
		t.Fatal(err)
	}

	isHit := func(c byte) bool { return c == '#' }
	if fb.Count(isHit) <= fb1.Count(isHit) {
		t.Errorf("Expected union scene to cover more cells: %d vs %d", fb.Count(isHit), fb1.Count(isHit))
	}
}

func TestDegenerateRay(t *testing.T) {
	tests := []struct {
		name   string
		camera mathutil.Vec3
		planeZ float32
		want   bool
		col    int
		row    int
	}{
		{"Default camera", mathutil.Vec3{Z: -3}, -1.5, false, 0, 0},
		{"Centre target", mathutil.Vec3{Z: -1.5}, -1.5, true, 20, 10},
		{"Corner target", mathutil.Vec3{X: -0.5, Y: -0.375, Z: -1.5}, -1.5, true, 0, 0},
		{"In plane off grid", mathutil.Vec3{X: 5, Y: 5, Z: -1.5}, -1.5, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			p.Camera, p.ImagePlaneZ = tt.camera, tt.planeZ
			col, row, ok := p.DegenerateRay()
			if ok != tt.want {
				t.Fatalf("Expected degenerate %v, got %v", tt.want, ok)
			}
			if ok && (col != tt.col || row != tt.row) {
				t.Errorf("Expected pixel (%d, %d), got (%d, %d)", tt.col, tt.row, col, row)
			}
		})
	}
}

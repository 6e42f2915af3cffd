package mathutil

import "github.com/chewxy/math32"

// Vec3 is a 3-component single-precision vector (value type, stack-allocated).
type Vec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (v Vec3) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// MaxAbs returns the largest absolute component. NaN components never win.
func (v Vec3) MaxAbs() float32 {
	var m float32
	if a := math32.Abs(v.X); a > m {
		m = a
	}
	if a := math32.Abs(v.Y); a > m {
		m = a
	}
	if a := math32.Abs(v.Z); a > m {
		m = a
	}
	return m
}

// Normalize scales v to unit length in place.
// A zero, infinite or NaN vector becomes zero and Normalize reports false.
func (v *Vec3) Normalize() bool {
	// Divide by the largest component first so squaring cannot overflow.
	m := v.MaxAbs()
	if m == 0 || math32.IsInf(m, 0) || math32.IsNaN(v.X+v.Y+v.Z) {
		*v = Vec3{}
		return false
	}
	s := Vec3{v.X / m, v.Y / m, v.Z / m}
	l := s.Len()
	v.X = s.X / l
	v.Y = s.Y / l
	v.Z = s.Z / l
	return true
}

// Normalized returns a unit-length copy of v, or the zero vector.
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

package mathutil

import "github.com/chewxy/math32"

// RotY returns a 3×3 rotation matrix around the Y axis. Angle in radians.
func RotY(a float32) Mat3 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

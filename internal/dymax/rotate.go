package dymax

import "math"

// Axis selects the rotation axis for Rotate3D.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Rotate2D rotates (x, y) about the origin by angle degrees,
// counter-clockwise positive.
func Rotate2D(angle, x, y float64) (float64, float64) {
	ha := angle * degToRad
	hx, hy := x, y
	return hx*math.Cos(ha) - hy*math.Sin(ha), hx*math.Sin(ha) + hy*math.Cos(ha)
}

// Rotate3D rotates v about the given axis by alpha radians, negating the
// angle before applying the right-hand matrix. The whole unfolding runs
// on this left-handed convention; the reference values hold only with
// the negation in place.
func Rotate3D(axis Axis, alpha float64, v Vec3) Vec3 {
	alpha = -alpha
	sin, cos := math.Sin(alpha), math.Cos(alpha)
	switch axis {
	case AxisX:
		return Vec3{X: v.X, Y: v.Y*cos - v.Z*sin, Z: v.Y*sin + v.Z*cos}
	case AxisY:
		return Vec3{X: v.X*cos + v.Z*sin, Y: v.Y, Z: -v.X*sin + v.Z*cos}
	case AxisZ:
		return Vec3{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos, Z: v.Z}
	}
	return v
}

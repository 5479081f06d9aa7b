package dymax

import "math"

// Vec3 is a cartesian point; pipeline inputs live on the unit sphere.
type Vec3 struct {
	X, Y, Z float64
}

// Point is a position on the unfolded map plane.
type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance between v and o.
func (v Vec3) Dist(o Vec3) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	dz := v.Z - o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// midpoint returns the componentwise middle of a and b.
func midpoint(a, b Vec3) Vec3 {
	return Vec3{
		X: (a.X + b.X) / 2.0,
		Y: (a.Y + b.Y) / 2.0,
		Z: (a.Z + b.Z) / 2.0,
	}
}

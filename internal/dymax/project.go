package dymax

import "math"

// Project unfolds a unit-sphere point onto the map plane, given the face
// and LCD triangle from Locate. The face is first rotated into a
// canonical frame (center on +Z, first vertex toward +Y), then Fuller's
// exact transform maps the spherical triangle onto the flat template
// triangle, and the placement table positions the result in the net.
//
// A point whose doubly-rotated image reaches the frame boundary circle
// (gz → 0) has no defined image; the result is NaN, never a panic.
func (t *Table) Project(face, lcd int, v Vec3) Point {
	ref := vertices[faceVertices[face][0]]

	theta, phi := CartesianToAzimuthPolar(t.centers[face])

	v = Rotate3D(AxisZ, theta, v)
	ref = Rotate3D(AxisZ, theta, ref)
	v = Rotate3D(AxisY, phi, v)
	ref = Rotate3D(AxisY, phi, ref)

	theta, _ = CartesianToAzimuthPolar(ref)
	v = Rotate3D(AxisZ, theta-math.Pi/2, v)

	gz := math.Sqrt(1.0 - v.X*v.X - v.Y*v.Y)
	gs := math.Sqrt(5.0+2.0*math.Sqrt(5.0)) / (gz * math.Sqrt(15.0))

	gxp := v.X * gs
	gyp := v.Y * gs

	ga0p := 2.0*gyp/sqrt3 + gel/3.0
	ga1p := gxp - gyp/sqrt3 + gel/3.0
	ga2p := gel/3.0 - gxp - gyp/sqrt3

	ga0 := gt + math.Atan2(ga0p-0.5*gel, gdve)
	ga1 := gt + math.Atan2(ga1p-0.5*gel, gdve)
	ga2 := gt + math.Atan2(ga2p-0.5*gel, gdve)

	gx := 0.5 * (ga1 - ga2)
	gy := (2.0*ga0 - ga1 - ga2) / (2.0 * sqrt3)

	pl := placements[face]
	if face == 8 && lcd < 4 {
		pl = face8Override
	} else if face == 15 && lcd < 3 {
		pl = face15Override
	}

	x, y := Rotate2D(pl.rotation, gx/garc, gy/garc)
	return Point{X: x + pl.x, Y: y + pl.y}
}

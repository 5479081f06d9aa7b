// Package dymax implements the forward Dymaxion (Fuller) map projection:
// geographic coordinates onto the plane of an unfolded icosahedron.
package dymax

import "math"

// Table is the immutable projection geometry: the static icosahedron
// tables plus the derived face centers and their planar map positions.
// Build one with NewTable before serving conversions; it is safe for
// concurrent readers.
type Table struct {
	centers  [FaceCount]Vec3
	centerXY [FaceCount]Point
}

// NewTable derives the face centers from the vertex table and eagerly
// places all twenty of them on the map plane.
func NewTable() *Table {
	t := &Table{}
	for i, fv := range faceVertices {
		var sx, sy, sz float64
		for _, vi := range fv {
			v := vertices[vi]
			sx += v.X
			sy += v.Y
			sz += v.Z
		}
		sx /= 3.0
		sy /= 3.0
		sz /= 3.0
		mag := math.Sqrt(sx*sx + sy*sy + sz*sz)
		t.centers[i] = Vec3{X: sx / mag, Y: sy / mag, Z: sz / mag}
	}
	for i := range t.centers {
		t.centerXY[i] = t.place(t.centers[i])
	}
	return t
}

// place classifies v and projects it in one step.
func (t *Table) place(v Vec3) Point {
	face, lcd := t.Locate(v)
	return t.Project(face, lcd, v)
}

// Vertex returns vertex i of the icosahedron.
func (t *Table) Vertex(i int) Vec3 {
	return vertices[i]
}

// FaceVertices returns the ordered vertex indices of face i.
func (t *Table) FaceVertices(i int) [3]int {
	return faceVertices[i]
}

// Center returns the unit center vector of face i.
func (t *Table) Center(i int) Vec3 {
	return t.centers[i]
}

// CenterPosition returns the planar map position of face i's center.
func (t *Table) CenterPosition(i int) Point {
	return t.centerXY[i]
}

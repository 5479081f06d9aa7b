package dymax

// Vertex placement blends a sliver of the neighboring corners into the
// target vertex. An exact corner sits where all six LCD triangles of
// several faces meet, on the boundary circle where Project degenerates.
const (
	vertexPush  = 0.9999
	vertexBlend = 0.0001
)

// VertexToPlane places icosahedron vertex `vertex` on the map plane,
// approached from the face given by triple (one of the faceVertices
// rows containing it).
func (t *Table) VertexToPlane(vertex int, triple [3]int) Point {
	var p Vec3
	for _, vi := range triple {
		w := vertexBlend
		if vi == vertex {
			w = vertexPush
		}
		v := vertices[vi]
		p.X += v.X * w
		p.Y += v.Y * w
		p.Z += v.Z * w
	}
	return t.place(p)
}

// FaceToQuad outlines face as a closed ring on the map plane: the first
// point repeats at the end. push pulls every outline point toward the
// face center (1 → the corners themselves, 0 → the center); callers use
// values just under 1 to stay clear of the degenerate corners. Atomic
// mode outlines the six LCD triangles instead, alternating corners with
// opposite-edge midpoints, seven points total.
func (t *Table) FaceToQuad(face int, push float64, atomic bool) []Point {
	fv := faceVertices[face]
	c := t.centers[face]

	var points []Point
	if atomic {
		points = make([]Point, 0, 7)
		for j := range 6 {
			var v Vec3
			if j%2 == 0 {
				v = vertices[fv[j/2]]
			} else {
				v = midpoint(vertices[fv[(j/2+1)%3]], vertices[fv[(j/2+2)%3]])
			}
			points = append(points, t.place(pull(v, c, push)))
		}
	} else {
		points = make([]Point, 0, 4)
		for j := range 3 {
			points = append(points, t.place(pull(vertices[fv[j]], c, push)))
		}
	}
	return append(points, points[0])
}

// pull blends v toward the center c, keeping push of v.
func pull(v, c Vec3, push float64) Vec3 {
	return Vec3{
		X: v.X*push + c.X*(1.0-push),
		Y: v.Y*push + c.Y*(1.0-push),
		Z: v.Z*push + c.Z*(1.0-push),
	}
}

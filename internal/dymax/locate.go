package dymax

// Locate classifies a point on the unit sphere: the face whose center
// lies closest (strict comparison, first minimum wins on ties) and which
// of the face's six LCD triangles holds the point. The LCD index comes
// from ranking the distances d1, d2, d3 to the face's vertices in table
// order; an equidistant point ranks as LCD 0. A non-finite point keeps
// face 0 and yields NaN coordinates downstream.
func (t *Table) Locate(v Vec3) (face, lcd int) {
	face = 0
	best := v.Dist(t.centers[0])
	for i := 1; i < FaceCount; i++ {
		if d := v.Dist(t.centers[i]); d < best {
			face = i
			best = d
		}
	}

	fv := faceVertices[face]
	d1 := v.Dist(vertices[fv[0]])
	d2 := v.Dist(vertices[fv[1]])
	d3 := v.Dist(vertices[fv[2]])

	switch {
	case d1 <= d2 && d2 <= d3:
		lcd = 0
	case d1 <= d3 && d3 <= d2:
		lcd = 5
	case d2 <= d1 && d1 <= d3:
		lcd = 1
	case d2 <= d3 && d3 <= d1:
		lcd = 2
	case d3 <= d1 && d1 <= d2:
		lcd = 4
	default: // d3 <= d2 <= d1, or NaN distances
		lcd = 3
	}
	return face, lcd
}

package dymax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocate(t *testing.T) {
	table := NewTable()

	tests := []struct {
		name     string
		v        Vec3
		wantFace int
		wantLCD  int
	}{
		{"minus x", Vec3{X: -1.0}, 10, 2},
		{"plus x", Vec3{X: 1.0}, 5, 5},
		{"plus y", Vec3{Y: 1.0}, 7, 1},
		{"minus y", Vec3{Y: -1.0}, 12, 0},
		{"north pole", Vec3{Z: 1.0}, 2, 5},
		{"south pole", Vec3{Z: -1.0}, 14, 4},
		{"diagonal", Vec3{0.577, 0.577, 0.577}, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, lcd := table.Locate(tt.v)
			assert.Equal(t, tt.wantFace, face)
			assert.Equal(t, tt.wantLCD, lcd)
		})
	}
}

// Every face center must locate back to its own face.
func TestLocateCenters(t *testing.T) {
	table := NewTable()
	for i := range FaceCount {
		face, _ := table.Locate(table.Center(i))
		assert.Equal(t, i, face, "center of face %d", i)
	}
}

// An exact edge midpoint is equidistant from both edge corners down to
// the last bit, so the first matching distance ranking wins.
func TestLocateDistanceTies(t *testing.T) {
	table := NewTable()

	tests := []struct {
		name     string
		v        Vec3
		wantFace int
		wantLCD  int
	}{
		{"first edge of face 0", midpoint(vertices[0], vertices[1]), 0, 0},
		{"far edge of face 0", midpoint(vertices[1], vertices[2]), 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, lcd := table.Locate(tt.v)
			assert.Equal(t, tt.wantFace, face)
			assert.Equal(t, tt.wantLCD, lcd)
		})
	}
}

func TestLocateLCDRange(t *testing.T) {
	table := NewTable()
	for i := range VertexCount {
		face, lcd := table.Locate(vertices[i])
		assert.GreaterOrEqual(t, face, 0, "vertex %d", i)
		assert.Less(t, face, FaceCount, "vertex %d", i)
		assert.GreaterOrEqual(t, lcd, 0, "vertex %d", i)
		assert.Less(t, lcd, 6, "vertex %d", i)
	}
}

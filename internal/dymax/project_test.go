package dymax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	table := NewTable()

	tests := []struct {
		name string
		face int
		lcd  int
		v    Vec3
		want Point
	}{
		{"minus x on face 10", 10, 2, Vec3{X: -1.0}, Point{3.5024708119057464, 0.095355159804071277}},
		{"washington dc on face 3", 3, 3, Vec3{0.1745929112627016, -0.7584611405560153, 0.6278964991169187}, Point{3.3032683375782588, 1.5338148735451902}},
		{"vertex 0 on face 2", 2, 0, vertices[0], Point{2.5000000000000004, 1.732050461711264}},
		{"vertex 3 on face 2", 2, 1, vertices[3], Point{2.000000213123116, 0.866025652128252}},
		{"vertex 9 on face 8", 8, 4, vertices[9], Point{1.500000187149146, 3.032638919986397e-07}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Project(tt.face, tt.lcd, tt.v)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
		})
	}
}

// The center of a face lands at the translation of its placement row,
// so the row picked for each LCD index is visible directly: faces 8
// and 15 swap to their override rows below the LCD cutover.
func TestProjectSplitFaceOverrides(t *testing.T) {
	table := NewTable()

	tests := []struct {
		name string
		face int
		lcd  int
		want Point
	}{
		{"face 8 lcd 0 override", 8, 0, Point{2.0, 0.288675134594813}},
		{"face 8 lcd 3 override", 8, 3, Point{2.0, 0.288675134594813}},
		{"face 8 lcd 4 regular", 8, 4, Point{1.5, 0.577350269189626}},
		{"face 8 lcd 5 regular", 8, 5, Point{1.5, 0.577350269189626}},
		{"face 15 lcd 0 override", 15, 0, Point{5.5, 1.1547005383792517}},
		{"face 15 lcd 2 override", 15, 2, Point{5.5, 1.1547005383792517}},
		{"face 15 lcd 3 regular", 15, 3, Point{0.5000000000000001, 0.5773502691896258}},
		{"face 15 lcd 5 regular", 15, 5, Point{0.5000000000000001, 0.5773502691896258}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Project(tt.face, tt.lcd, table.Center(tt.face))
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
		})
	}
}

// A vector on the boundary circle of the face frame has no real
// z-coordinate left, so the projection yields NaN instead of panicking.
func TestProjectDegenerate(t *testing.T) {
	table := NewTable()

	c := table.Center(0)
	v := Vec3{X: -c.Y * 1.5, Y: c.X * 1.5}

	var p Point
	assert.NotPanics(t, func() { p = table.Project(0, 0, v) })
	assert.True(t, math.IsNaN(p.X))
	assert.True(t, math.IsNaN(p.Y))
}

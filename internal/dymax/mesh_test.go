package dymax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexToPlane(t *testing.T) {
	table := NewTable()

	tests := []struct {
		name   string
		vertex int
		face   int
		want   Point
	}{
		{"vertex 0 via face 0", 0, 0, Point{2.4998724350563957, 1.7321244572234062}},
		{"vertex 1 via face 0", 1, 0, Point{1.999999677000235, 2.597928491558692}},
		{"vertex 2 via face 0", 2, 0, Point{1.5001280963401986, 1.7321248431090785}},
		{"vertex 3 via face 1", 3, 1, Point{2.0000003322806266, 0.8661733807178572}},
		{"vertex 4 via face 2", 4, 2, Point{2.9998719055235425, 0.866099319961836}},
		{"vertex 5 via face 3", 5, 3, Point{3.499872186066322, 1.7319767726842072}},
		{"vertex 6 via face 12", 6, 12, Point{4.49987217171728, 1.7319769518418744}},
		{"vertex 7 via face 5", 7, 5, Point{1.0001279345567158, 2.598002329295806}},
		{"vertex 8 via face 6", 8, 6, Point{0.9999999916867544, 0.8661732949103429}},
		{"vertex 9 via face 8", 9, 8, Point{1.500000187111716, 0.00014801589376001179}},
		{"vertex 10 via face 10", 10, 10, Point{3.999871991368922, 0.8659513404749686}},
		{"vertex 11 via face 14", 11, 14, Point{5.499871760626288, 1.732124807402753}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.VertexToPlane(tt.vertex, table.FaceVertices(tt.face))
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
		})
	}
}

func TestFaceToQuadCorners(t *testing.T) {
	table := NewTable()

	tests := []struct {
		name   string
		face   int
		push   float64
		atomic bool
		want   []Point
	}{
		{
			name: "face 1 pulled in", face: 1, push: 0.75,
			want: []Point{
				{2.35304555643014, 1.6472066200152073},
				{1.6469541348510974, 1.6472066169128479},
				{2.0000002495226172, 1.0357138290762697},
			},
		},
		{
			name: "face 0 near corners", face: 0, push: 0.9999,
			want: []Point{
				{2.4999363941236497, 1.7320875304387098},
				{1.9999996769679285, 2.5980023450533127},
				{1.5000641373701031, 1.7320879163883869},
			},
		},
		{
			name: "face 5 atomic", face: 5, push: 0.9999, atomic: true,
			want: []Point{
				{1.9999357871856966, 2.5980391380676924},
				{1.2884957105433754, 2.18728901830596},
				{1.0000639755558276, 2.598039256040285},
				{1.7115043717669332, 2.187288981725481},
				{1.500000152867565, 1.7321248444857498},
				{1.4999999120092768, 2.553625230803974},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.FaceToQuad(tt.face, tt.push, tt.atomic)
			require.Len(t, got, len(tt.want)+1)
			for i, w := range tt.want {
				assert.InDelta(t, w.X, got[i].X, 1e-12, "point %d x", i)
				assert.InDelta(t, w.Y, got[i].Y, 1e-12, "point %d y", i)
			}
			assert.Equal(t, got[0], got[len(got)-1])
		})
	}
}

func TestFaceToQuadClosedRings(t *testing.T) {
	table := NewTable()

	for face := range FaceCount {
		ring := table.FaceToQuad(face, 0.95, false)
		require.Len(t, ring, 4, "face %d", face)
		assert.Equal(t, ring[0], ring[3], "face %d", face)

		ring = table.FaceToQuad(face, 0.95, true)
		require.Len(t, ring, 7, "face %d", face)
		assert.Equal(t, ring[0], ring[6], "face %d", face)

		for i, p := range ring {
			require.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "face %d point %d", face, i)
		}
	}
}

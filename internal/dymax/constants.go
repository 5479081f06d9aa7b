package dymax

import "math"

// Icosahedron dimensions.
const (
	FaceCount   = 20
	VertexCount = 12
)

// Unfolding scalars for the spherical triangle of the icosahedron.
// garc is the edge arc length on the unit sphere; gt, gdve and gel are
// the template-triangle constants of Fuller's transform, all derived
// from golden-ratio expressions.
var (
	sqrt3 = math.Sqrt(3.0)

	garc = 2.0 * math.Asin(math.Sqrt(5.0-math.Sqrt(5.0))/math.Sqrt(10.0))
	gt   = garc / 2.0
	gdve = math.Sqrt(3.0+math.Sqrt(5.0)) / math.Sqrt(5.0+math.Sqrt(5.0))
	gel  = math.Sqrt(8.0) / math.Sqrt(5.0+math.Sqrt(5.0))
)

// vertices are the icosahedron corners in Gray's orientation: vertex 0
// sits in the Norwegian Sea, vertex 11 antipodal to it south of New
// Zealand, so that no corner lands on a major landmass.
var vertices = [VertexCount]Vec3{
	{0.420152, 0.078145, 0.904083},
	{0.995009, -0.091348, 0.040147},
	{0.518837, 0.835420, 0.181332},
	{-0.414682, 0.655962, 0.630676},
	{-0.515456, -0.381717, 0.767201},
	{0.355781, -0.843580, 0.402234},
	{0.414682, -0.655962, -0.630676},
	{0.515456, 0.381717, -0.767201},
	{-0.355781, 0.843580, -0.402234},
	{-0.995009, 0.091348, -0.040147},
	{-0.518837, -0.835420, -0.181332},
	{-0.420152, -0.078145, -0.904083},
}

// faceVertices lists each face's corners. The order is fixed: the first
// vertex anchors the unfolding frame in Project, and Locate ranks the
// LCD distances in this order.
var faceVertices = [FaceCount][3]int{
	{0, 1, 2},
	{0, 2, 3},
	{0, 3, 4},
	{0, 4, 5},
	{0, 5, 1},
	{1, 7, 2},
	{2, 7, 8},
	{2, 8, 3},
	{3, 8, 9},
	{3, 9, 4},
	{4, 9, 10},
	{4, 10, 5},
	{5, 10, 6},
	{1, 5, 6},
	{7, 6, 11},
	{7, 11, 8},
	{8, 11, 9},
	{9, 11, 10},
	{10, 11, 6},
	{7, 1, 6},
}

// placement positions one unfolded face on the map plane: translate by
// (x, y) after rotating by rotation degrees.
type placement struct {
	x, y     float64
	rotation float64
}

// placements lay the 20 faces out as the classic Fuller island net.
// x steps in halves and y in multiples of 1/(2√3), the triangle lattice
// of the unfolded plane.
var placements = [FaceCount]placement{
	{2.0, 7.0 / (2.0 * sqrt3), 240.0}, // Africa and Arabia
	{2.0, 5.0 / (2.0 * sqrt3), 300.0}, // central Asia
	{2.5, 2.0 / sqrt3, 0.0},           // Arctic
	{3.0, 5.0 / (2.0 * sqrt3), 60.0},  // North America
	{2.5, 4.0 * sqrt3 / 3.0, 180.0},   // western Europe, North Atlantic
	{1.5, 4.0 * sqrt3 / 3.0, 300.0},   // southern Africa
	{1.0, 5.0 / (2.0 * sqrt3), 300.0}, // Indian Ocean
	{1.5, 2.0 / sqrt3, 0.0},           // India, southeast Asia
	{1.5, 1.0 / sqrt3, 300.0},         // Indonesia (split face)
	{2.5, 1.0 / sqrt3, 60.0},          // Japan, northwest Pacific
	{3.5, 1.0 / sqrt3, 60.0},          // central Pacific
	{3.5, 2.0 / sqrt3, 120.0},         // western North America
	{4.0, 5.0 / (2.0 * sqrt3), 60.0},  // western South America
	{4.0, 7.0 / (2.0 * sqrt3), 0.0},   // eastern South America
	{5.0, 7.0 / (2.0 * sqrt3), 0.0},   // Antarctica, polar side
	{0.5, 1.0 / sqrt3, 60.0},          // Antarctica, Ross Sea side (split face)
	{1.0, 1.0 / (2.0 * sqrt3), 0.0},   // Australia
	{4.0, 1.0 / (2.0 * sqrt3), 120.0}, // south Pacific
	{4.5, 2.0 / sqrt3, 120.0},         // southeast Pacific
	{4.5, 4.0 * sqrt3 / 3.0, 300.0},   // South Atlantic
}

// Faces 8 and 15 are split on the map: part of each face is relocated so
// the net stays contiguous around the Pacific and Antarctica. The
// overrides apply to LCD triangles 0-3 of face 8 and 0-2 of face 15;
// the remaining triangles use the regular placement rows above.
var (
	face8Override  = placement{2.0, 1.0 / (2.0 * sqrt3), 0.0}
	face15Override = placement{5.5, 2.0 / sqrt3, 0.0}
)

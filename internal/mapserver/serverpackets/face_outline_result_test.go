package serverpackets

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/udisondev/dymax/internal/dymax"
)

func TestFaceOutlineResult(t *testing.T) {
	tests := []struct {
		name   string
		points []dymax.Point
	}{
		{
			name: "triangle outline",
			points: []dymax.Point{
				{X: 2.35304555643014, Y: 1.6472066200152073},
				{X: 1.6469541348510974, Y: 1.6472066169128479},
				{X: 2.0000002495226172, Y: 1.0357138290762697},
				{X: 2.35304555643014, Y: 1.6472066200152073},
			},
		},
		{
			name:   "empty outline",
			points: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 512)
			n := FaceOutlineResult(buf, tt.points)

			// Проверяем opcode и count
			if buf[0] != opcodeFaceOutlineResult {
				t.Errorf("opcode = 0x%02x, want 0x%02x", buf[0], opcodeFaceOutlineResult)
			}
			if int(buf[1]) != len(tt.points) {
				t.Errorf("count = %d, want %d", buf[1], len(tt.points))
			}

			// Проверяем точки
			pos := 2
			for i, p := range tt.points {
				x := math.Float64frombits(binary.LittleEndian.Uint64(buf[pos:]))
				y := math.Float64frombits(binary.LittleEndian.Uint64(buf[pos+8:]))
				pos += 16

				if x != p.X || y != p.Y {
					t.Errorf("point %d = (%v, %v), want (%v, %v)", i, x, y, p.X, p.Y)
				}
			}

			// Проверяем общую длину
			if n != pos {
				t.Errorf("returned length = %d, want %d", n, pos)
			}
		})
	}
}

func TestVertexPointResult(t *testing.T) {
	buf := make([]byte, 512)
	n := VertexPointResult(buf, 1.500000187111716, 0.00014801589376001179)

	if buf[0] != opcodeVertexPointResult {
		t.Errorf("opcode = 0x%02x, want 0x%02x", buf[0], opcodeVertexPointResult)
	}

	x := math.Float64frombits(binary.LittleEndian.Uint64(buf[1:]))
	y := math.Float64frombits(binary.LittleEndian.Uint64(buf[9:]))
	if x != 1.500000187111716 {
		t.Errorf("x = %v, want 1.500000187111716", x)
	}
	if y != 0.00014801589376001179 {
		t.Errorf("y = %v, want 0.00014801589376001179", y)
	}

	if n != 17 {
		t.Errorf("returned length = %d, want 17", n)
	}
}

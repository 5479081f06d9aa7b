package clientpackets

import (
	"fmt"

	"github.com/udisondev/dymax/internal/mapserver/packet"
)

// VertexPointRequest [0x02] — клиент → сервер запрос позиции вершины на развёртке
//
// Format:
//   [opcode 0x02]
//   [vertex int32 LE]
//   [t0 int32 LE]    // вершины опорного треугольника
//   [t1 int32 LE]
//   [t2 int32 LE]
type VertexPointRequest struct {
	Vertex int
	Triple [3]int
}

// Parse парсит пакет VertexPointRequest из body (без opcode).
func (p *VertexPointRequest) Parse(body []byte) error {
	r := packet.NewReader(body)

	vertex, err := r.ReadInt()
	if err != nil {
		return fmt.Errorf("reading vertex: %w", err)
	}
	p.Vertex = int(vertex)

	for i := range 3 {
		t, err := r.ReadInt()
		if err != nil {
			return fmt.Errorf("reading t%d: %w", i, err)
		}
		p.Triple[i] = int(t)
	}

	return nil
}

package serverpackets

import (
	"encoding/binary"
	"math"
)

const (
	opcodeVertexPointResult = 0x02
)

// VertexPointResult [0x02] — сервер → клиент позиция вершины на развёртке
//
// Format:
//   [opcodeVertexPointResult]  // opcode
//   [x double LE]
//   [y double LE]
//
// Returns: number of bytes written to buf
func VertexPointResult(buf []byte, x, y float64) int {
	pos := 0

	// Opcode
	buf[pos] = opcodeVertexPointResult
	pos++

	// X (LE)
	binary.LittleEndian.PutUint64(buf[pos:], math.Float64bits(x))
	pos += 8

	// Y (LE)
	binary.LittleEndian.PutUint64(buf[pos:], math.Float64bits(y))
	pos += 8

	return pos
}

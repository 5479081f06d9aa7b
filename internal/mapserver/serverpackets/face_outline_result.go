package serverpackets

import (
	"encoding/binary"
	"math"

	"github.com/udisondev/dymax/internal/dymax"
)

const (
	opcodeFaceOutlineResult = 0x03
)

// FaceOutlineResult [0x03] — сервер → клиент замкнутый контур грани
//
// Format:
//   [opcodeFaceOutlineResult]  // opcode
//   [count byte]               // число точек, включая замыкающую
//   [x double LE][y double LE] // count раз
//
// Returns: number of bytes written to buf
func FaceOutlineResult(buf []byte, points []dymax.Point) int {
	pos := 0

	// Opcode
	buf[pos] = opcodeFaceOutlineResult
	pos++

	// Point count
	buf[pos] = byte(len(points))
	pos++

	// Points (LE)
	for _, p := range points {
		binary.LittleEndian.PutUint64(buf[pos:], math.Float64bits(p.X))
		pos += 8
		binary.LittleEndian.PutUint64(buf[pos:], math.Float64bits(p.Y))
		pos += 8
	}

	return pos
}

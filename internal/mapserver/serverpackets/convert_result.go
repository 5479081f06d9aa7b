package serverpackets

import (
	"encoding/binary"
	"math"
)

const (
	opcodeConvertResult = 0x01
)

// ConvertResult [0x01] — сервер → клиент результат проекции
//
// Format:
//   [opcodeConvertResult]  // opcode
//   [x double LE]
//   [y double LE]
//   [withLCD byte]         // 1 = следом идёт LCD байт
//   [lcd byte]             // только если withLCD = 1
//
// Returns: number of bytes written to buf
func ConvertResult(buf []byte, x, y float64, lcd byte, withLCD bool) int {
	pos := 0

	// Opcode
	buf[pos] = opcodeConvertResult
	pos++

	// X (LE)
	binary.LittleEndian.PutUint64(buf[pos:], math.Float64bits(x))
	pos += 8

	// Y (LE)
	binary.LittleEndian.PutUint64(buf[pos:], math.Float64bits(y))
	pos += 8

	// LCD flag + value
	if withLCD {
		buf[pos] = 1
		buf[pos+1] = lcd
		pos += 2
	} else {
		buf[pos] = 0
		pos++
	}

	return pos
}

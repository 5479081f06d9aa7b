package packet

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Reader provides methods for reading packet data.
// Uses Little-Endian byte order for all multi-byte values.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a new packet reader.
func NewReader(data []byte) *Reader {
	return &Reader{
		data: data,
		pos:  0,
	}
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, fmt.Errorf("ReadByte: not enough data (pos=%d, len=%d)", r.pos, len(r.data))
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBool reads a single byte as a flag: zero is false, anything else true.
func (r *Reader) ReadBool() (bool, error) {
	if r.pos >= len(r.data) {
		return false, fmt.Errorf("ReadBool: not enough data (pos=%d, len=%d)", r.pos, len(r.data))
	}
	b := r.data[r.pos]
	r.pos++
	return b != 0, nil
}

// ReadInt reads an int32 (4 bytes, LE).
func (r *Reader) ReadInt() (int32, error) {
	if r.pos+4 > len(r.data) {
		return 0, fmt.Errorf("ReadInt: not enough data (pos=%d, len=%d)", r.pos, len(r.data))
	}
	val := int32(binary.LittleEndian.Uint32(r.data[r.pos:]))
	r.pos += 4
	return val, nil
}

// ReadDouble reads a float64 (8 bytes, LE).
func (r *Reader) ReadDouble() (float64, error) {
	if r.pos+8 > len(r.data) {
		return 0, fmt.Errorf("ReadDouble: not enough data (pos=%d, len=%d)", r.pos, len(r.data))
	}
	bits := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return math.Float64frombits(bits), nil
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Position returns the current read position.
func (r *Reader) Position() int {
	return r.pos
}

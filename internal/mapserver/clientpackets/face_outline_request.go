package clientpackets

import (
	"fmt"

	"github.com/udisondev/dymax/internal/mapserver/packet"
)

// FaceOutlineRequest [0x03] — клиент → сервер запрос контура грани
//
// Format:
//   [opcode 0x03]
//   [face int32 LE]
//   [push double LE] // доля стягивания углов к центру
//   [atomic byte]    // 1 = шестиугольный LCD контур
type FaceOutlineRequest struct {
	Face   int
	Push   float64
	Atomic bool
}

// Parse парсит пакет FaceOutlineRequest из body (без opcode).
func (p *FaceOutlineRequest) Parse(body []byte) error {
	r := packet.NewReader(body)

	face, err := r.ReadInt()
	if err != nil {
		return fmt.Errorf("reading face: %w", err)
	}
	p.Face = int(face)

	push, err := r.ReadDouble()
	if err != nil {
		return fmt.Errorf("reading push: %w", err)
	}
	p.Push = push

	atomic, err := r.ReadBool()
	if err != nil {
		return fmt.Errorf("reading atomic: %w", err)
	}
	p.Atomic = atomic

	return nil
}

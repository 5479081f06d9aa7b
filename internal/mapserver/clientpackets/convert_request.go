package clientpackets

import (
	"fmt"

	"github.com/udisondev/dymax/internal/mapserver/packet"
)

// ConvertRequest [0x01] — клиент → сервер запрос проекции координат
//
// Format:
//   [opcode 0x01]
//   [lng double LE]
//   [lat double LE]
//   [withLCD byte]   // 1 = вернуть LCD индекс в ответе
type ConvertRequest struct {
	Lng     float64
	Lat     float64
	WithLCD bool
}

// Parse парсит пакет ConvertRequest из body (без opcode).
func (p *ConvertRequest) Parse(body []byte) error {
	r := packet.NewReader(body)

	lng, err := r.ReadDouble()
	if err != nil {
		return fmt.Errorf("reading lng: %w", err)
	}
	p.Lng = lng

	lat, err := r.ReadDouble()
	if err != nil {
		return fmt.Errorf("reading lat: %w", err)
	}
	p.Lat = lat

	withLCD, err := r.ReadBool()
	if err != nil {
		return fmt.Errorf("reading withLCD: %w", err)
	}
	p.WithLCD = withLCD

	return nil
}

package protocol

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the length prefix in front of every packet: a
// little-endian uint16 holding the total packet size, header included.
const HeaderSize = 2

// MaxPacketSize bounds a single packet on the wire, header included;
// ReadPacket rejects frames announcing more. Requests are a few dozen
// bytes; responses top out at a face outline with seven points.
const MaxPacketSize = 512

// WritePacket frames the payload and writes the packet to w.
// Precondition: payload lives at buf[HeaderSize : HeaderSize+payloadLen].
func WritePacket(w io.Writer, buf []byte, payloadLen int) error {
	needed := HeaderSize + payloadLen
	if len(buf) < needed {
		return fmt.Errorf("write packet: buffer too small (need %d, have %d)", needed, len(buf))
	}

	binary.LittleEndian.PutUint16(buf[:HeaderSize], uint16(needed))

	if _, err := w.Write(buf[:needed]); err != nil {
		return fmt.Errorf("writing packet: %w", err)
	}
	return nil
}

// ReadPacket reads one packet from r into buf.
// Returns a subslice of buf with the payload (without the length header).
func ReadPacket(r io.Reader, buf []byte) ([]byte, error) {
	var header [HeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("reading packet header: %w", err)
	}

	totalLen := int(binary.LittleEndian.Uint16(header[:]))
	if totalLen < HeaderSize {
		return nil, fmt.Errorf("invalid packet length: %d", totalLen)
	}
	if totalLen > MaxPacketSize {
		return nil, fmt.Errorf("packet length %d exceeds limit %d", totalLen, MaxPacketSize)
	}

	payloadLen := totalLen - HeaderSize
	if payloadLen == 0 {
		return nil, fmt.Errorf("empty packet")
	}

	if payloadLen > len(buf) {
		return nil, fmt.Errorf("packet payload %d exceeds buffer size %d", payloadLen, len(buf))
	}

	payload := buf[:payloadLen]
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("reading packet payload: %w", err)
	}

	return payload, nil
}

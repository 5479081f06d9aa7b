package testutil

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"net"
	"testing"
	"time"
	"unicode/utf16"

	"github.com/udisondev/dymax/internal/dymax"
	"github.com/udisondev/dymax/internal/protocol"
)

// MapClient упрощает написание integration тестов для map сервера.
// Автоматически управляет подключением и чтением/записью пакетов.
type MapClient struct {
	t        testing.TB
	conn     net.Conn
	readBuf  []byte
	writeBuf []byte

	// Timeout для операций
	timeout time.Duration
}

// NewMapClient создаёт MapClient и подключается к серверу по указанному адресу.
// Использует t.Cleanup() для автоматического закрытия соединения.
func NewMapClient(t testing.TB, addr string) (*MapClient, error) {
	t.Helper()

	// Retry dial с экспоненциальным бэкофф + jitter: macOS TCP стек может не успевать
	// освободить порты при массовых подключениях
	var conn net.Conn
	var err error
	for attempt := range 10 {
		conn, err = net.DialTimeout("tcp", addr, 5*time.Second)
		if err == nil {
			break
		}
		if attempt < 9 {
			base := time.Duration(20<<min(attempt, 6)) * time.Millisecond // 20, 40, 80, ..., 1280ms
			jitter := rand.N(base/2 + 1)
			time.Sleep(base + jitter)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("dial map server: %w", err)
	}

	// SO_LINGER=0: немедленный RST вместо TIME_WAIT, предотвращает исчерпание эфемерных портов в тестах
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		if err := tcpConn.SetLinger(0); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("set linger: %w", err)
		}
	}

	client := &MapClient{
		t:        t,
		conn:     conn,
		readBuf:  make([]byte, 256),
		writeBuf: make([]byte, 256),
		timeout:  5 * time.Second,
	}

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, nil
}

// SendConvert отправляет пакет ConvertRequest (opcode 0x01).
func (c *MapClient) SendConvert(lng, lat float64, withLCD bool) error {
	c.t.Helper()

	// ConvertRequest packet: opcode (1) + lng (8) + lat (8) + withLCD (1)
	payload := c.writeBuf[protocol.HeaderSize:]
	payload[0] = 0x01 // ConvertRequest opcode
	binary.LittleEndian.PutUint64(payload[1:], math.Float64bits(lng))
	binary.LittleEndian.PutUint64(payload[9:], math.Float64bits(lat))
	if withLCD {
		payload[17] = 1
	} else {
		payload[17] = 0
	}

	return c.writePacket(18)
}

// ReadConvertResult читает пакет ConvertResult (opcode 0x01).
// Возвращает lcd = -1 если пакет пришёл без LCD байта.
// Если сервер отправил Fail, возвращает ошибку с reason кодом.
func (c *MapClient) ReadConvertResult() (x, y float64, lcd int, err error) {
	c.t.Helper()

	payload, err := c.ReadPacket()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("read ConvertResult: %w", err)
	}

	if payload[0] != 0x01 {
		if payload[0] == 0xFF && len(payload) >= 2 {
			return 0, 0, 0, fmt.Errorf("received Fail, reason: 0x%02X", payload[1])
		}
		return 0, 0, 0, fmt.Errorf("expected ConvertResult opcode 0x01, got 0x%02X", payload[0])
	}

	if len(payload) < 18 {
		return 0, 0, 0, fmt.Errorf("ConvertResult payload too short: %d", len(payload))
	}

	x = math.Float64frombits(binary.LittleEndian.Uint64(payload[1:9]))
	y = math.Float64frombits(binary.LittleEndian.Uint64(payload[9:17]))

	lcd = -1
	if payload[17] == 1 {
		if len(payload) < 19 {
			return 0, 0, 0, fmt.Errorf("ConvertResult LCD flag set but byte missing")
		}
		lcd = int(payload[18])
	}

	return x, y, lcd, nil
}

// SendVertexPoint отправляет пакет VertexPointRequest (opcode 0x02).
func (c *MapClient) SendVertexPoint(vertex int, triple [3]int) error {
	c.t.Helper()

	// VertexPointRequest packet: opcode (1) + vertex (4) + triple (3x4)
	payload := c.writeBuf[protocol.HeaderSize:]
	payload[0] = 0x02 // VertexPointRequest opcode
	binary.LittleEndian.PutUint32(payload[1:], uint32(vertex))
	for i, v := range triple {
		binary.LittleEndian.PutUint32(payload[5+4*i:], uint32(v))
	}

	return c.writePacket(17)
}

// ReadVertexPointResult читает пакет VertexPointResult (opcode 0x02).
// Если сервер отправил Fail, возвращает ошибку с reason кодом.
func (c *MapClient) ReadVertexPointResult() (x, y float64, err error) {
	c.t.Helper()

	payload, err := c.ReadPacket()
	if err != nil {
		return 0, 0, fmt.Errorf("read VertexPointResult: %w", err)
	}

	if payload[0] != 0x02 {
		if payload[0] == 0xFF && len(payload) >= 2 {
			return 0, 0, fmt.Errorf("received Fail, reason: 0x%02X", payload[1])
		}
		return 0, 0, fmt.Errorf("expected VertexPointResult opcode 0x02, got 0x%02X", payload[0])
	}

	if len(payload) < 17 {
		return 0, 0, fmt.Errorf("VertexPointResult payload too short: %d", len(payload))
	}

	x = math.Float64frombits(binary.LittleEndian.Uint64(payload[1:9]))
	y = math.Float64frombits(binary.LittleEndian.Uint64(payload[9:17]))

	return x, y, nil
}

// SendFaceOutline отправляет пакет FaceOutlineRequest (opcode 0x03).
func (c *MapClient) SendFaceOutline(face int, push float64, atomic bool) error {
	c.t.Helper()

	// FaceOutlineRequest packet: opcode (1) + face (4) + push (8) + atomic (1)
	payload := c.writeBuf[protocol.HeaderSize:]
	payload[0] = 0x03 // FaceOutlineRequest opcode
	binary.LittleEndian.PutUint32(payload[1:], uint32(face))
	binary.LittleEndian.PutUint64(payload[5:], math.Float64bits(push))
	if atomic {
		payload[13] = 1
	} else {
		payload[13] = 0
	}

	return c.writePacket(14)
}

// ReadFaceOutlineResult читает пакет FaceOutlineResult (opcode 0x03)
// и возвращает точки замкнутого контура.
// Если сервер отправил Fail, возвращает ошибку с reason кодом.
func (c *MapClient) ReadFaceOutlineResult() ([]dymax.Point, error) {
	c.t.Helper()

	payload, err := c.ReadPacket()
	if err != nil {
		return nil, fmt.Errorf("read FaceOutlineResult: %w", err)
	}

	if payload[0] != 0x03 {
		if payload[0] == 0xFF && len(payload) >= 2 {
			return nil, fmt.Errorf("received Fail, reason: 0x%02X", payload[1])
		}
		return nil, fmt.Errorf("expected FaceOutlineResult opcode 0x03, got 0x%02X", payload[0])
	}

	if len(payload) < 2 {
		return nil, fmt.Errorf("FaceOutlineResult packet too short")
	}

	count := int(payload[1])
	want := 2 + count*16
	if len(payload) < want {
		return nil, fmt.Errorf("FaceOutlineResult payload too short: %d (want %d)", len(payload), want)
	}

	points := make([]dymax.Point, count)
	for i := range count {
		off := 2 + i*16
		points[i].X = math.Float64frombits(binary.LittleEndian.Uint64(payload[off : off+8]))
		points[i].Y = math.Float64frombits(binary.LittleEndian.Uint64(payload[off+8 : off+16]))
	}

	return points, nil
}

// ReadFail читает пакет Fail (opcode 0xFF) и возвращает reason code и сообщение.
// Если получен другой пакет, возвращает ошибку.
func (c *MapClient) ReadFail() (byte, string, error) {
	c.t.Helper()

	payload, err := c.ReadPacket()
	if err != nil {
		return 0, "", err
	}

	if len(payload) < 4 {
		return 0, "", fmt.Errorf("Fail packet too short: %d", len(payload))
	}

	if payload[0] != 0xFF {
		return 0, "", fmt.Errorf("expected Fail opcode 0xFF, got 0x%02X", payload[0])
	}

	reason := payload[1]

	// Message: UTF-16LE null-terminated
	var units []uint16
	for off := 2; off+1 < len(payload); off += 2 {
		u := binary.LittleEndian.Uint16(payload[off : off+2])
		if u == 0 {
			break
		}
		units = append(units, u)
	}

	return reason, string(utf16.Decode(units)), nil
}

// ReadPacket читает любой пакет от сервера и возвращает payload.
// Используется для generic чтения когда opcode неизвестен.
func (c *MapClient) ReadPacket() ([]byte, error) {
	c.t.Helper()

	if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return nil, fmt.Errorf("set read deadline: %w", err)
	}

	payload, err := protocol.ReadPacket(c.conn, c.readBuf)
	if err != nil {
		return nil, fmt.Errorf("read packet: %w", err)
	}

	return payload, nil
}

// writePacket пишет length header + payload из writeBuf в соединение.
func (c *MapClient) writePacket(payloadLen int) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	if err := protocol.WritePacket(c.conn, c.writeBuf, payloadLen); err != nil {
		return fmt.Errorf("write packet: %w", err)
	}
	return nil
}

// Close закрывает соединение с сервером.
func (c *MapClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

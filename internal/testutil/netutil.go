package testutil

import (
	"net"
	"testing"
	"time"
)

// ConnWithDeadline оборачивает net.Conn и перед каждым Read/Write
// продлевает соответствующий deadline. Тест, застрявший на чтении
// ответа, падает по timeout вместо того чтобы повесить весь прогон.
type ConnWithDeadline struct {
	net.Conn
	timeout time.Duration
}

// NewConnWithDeadline создаёт обёртку вокруг conn с указанным timeout.
func NewConnWithDeadline(conn net.Conn, timeout time.Duration) *ConnWithDeadline {
	return &ConnWithDeadline{Conn: conn, timeout: timeout}
}

func (c *ConnWithDeadline) Read(b []byte) (int, error) {
	if err := c.Conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return 0, err
	}
	return c.Conn.Read(b)
}

func (c *ConnWithDeadline) Write(b []byte) (int, error) {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
		return 0, err
	}
	return c.Conn.Write(b)
}

// ListenTCP открывает TCP listener на свободном loopback порту.
// Listener закрывается автоматически при завершении теста; адрес
// пригоден для net.Dial как есть.
func ListenTCP(t testing.TB) (net.Listener, string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to create TCP listener: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	return ln, ln.Addr().String()
}

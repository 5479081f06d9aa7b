package mapserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/udisondev/dymax/internal/config"
	"github.com/udisondev/dymax/internal/dymax"
	"github.com/udisondev/dymax/internal/protocol"
)

// Server is the map projection server that accepts client connections.
type Server struct {
	cfg     config.MapServer
	handler *Handler

	sendPool *BytePool
	readPool *BytePool

	listener net.Listener
	mu       sync.Mutex
}

// NewServer creates a map server around a prebuilt projection table.
// Таблица и конвертер строятся заранее в main, чтобы первый запрос
// не платил за инициализацию.
func NewServer(cfg config.MapServer, table *dymax.Table, conv *dymax.Converter) *Server {
	return &Server{
		cfg:      cfg,
		handler:  NewHandler(table, conv),
		sendPool: NewBytePool(protocol.MaxPacketSize),
		readPool: NewBytePool(protocol.MaxPacketSize),
	}
}

// Addr возвращает адрес, на котором слушает сервер.
// Возвращает nil если сервер ещё не запущен.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Close закрывает listener и останавливает сервер.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

// Run begins listening for client connections.
// Создаёт listener на cfg.BindAddress:cfg.Port и запускает accept loop.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.BindAddress, s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	return s.Serve(ctx, ln)
}

// Serve принимает готовый listener и запускает accept loop.
// Используется для тестирования с произвольным listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	var wg sync.WaitGroup
	wg.Go(func() {
		slog.Info("map server started", "address", ln.Addr())
		acceptLoop(ctx, &wg, s, ln)
	})

	wg.Wait()

	return nil
}

func acceptLoop(
	ctx context.Context,
	wg *sync.WaitGroup,
	srv *Server,
	ln net.Listener,
) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			conn, err := ln.Accept()
			if err != nil {
				if errors.Is(err, net.ErrClosed) {
					return
				}
				slog.Error("Failed to accept new connection", "error", err)
				continue
			}
			wg.Go(func() {
				handleConnection(ctx, srv, conn)
			})
		}
	}
}

func handleConnection(ctx context.Context, srv *Server, conn net.Conn) {
	done := make(chan struct{})
	defer close(done)
	defer conn.Close()

	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	host, _, err := net.SplitHostPort(conn.RemoteAddr().String())
	if err != nil {
		slog.Error("Failed to split host port", "connection", conn.RemoteAddr(), "error", err)
		return
	}

	slog.Info("new connection", "remote", host)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			if ok, err := handlePacket(srv, conn, host); !ok {
				return
			} else if err != nil {
				slog.Error("Failed to handle packet", "remote", conn.RemoteAddr(), "error", err)
			}
		}
	}
}

func handlePacket(srv *Server, conn net.Conn, remote string) (bool, error) {
	sendBuf := srv.sendPool.Get()
	defer srv.sendPool.Put(sendBuf)
	readBuf := srv.readPool.Get()
	defer srv.readPool.Put(readBuf)
	data, err := protocol.ReadPacket(conn, readBuf)
	if err != nil {
		return false, fmt.Errorf("read packet: %w", err)
	}

	// Handler writes response payload into sendBuf[protocol.HeaderSize:]
	n, ok, err := srv.handler.HandlePacket(remote, data, sendBuf[protocol.HeaderSize:])
	if err != nil {
		return false, fmt.Errorf("handle packet: %w", err)
	}

	if n > 0 {
		if err := protocol.WritePacket(conn, sendBuf, n); err != nil {
			return false, fmt.Errorf("write packet: %w", err)
		}
	}

	return ok, nil
}

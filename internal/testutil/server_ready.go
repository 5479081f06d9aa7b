package testutil

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"
)

const pollInterval = 10 * time.Millisecond

// WaitForTCPReady опрашивает addr пока сервер не начнёт принимать
// подключения. Заменяет time.Sleep после запуска сервера в goroutine:
// accept loop стартует асинхронно, и первый клиент может его опередить.
func WaitForTCPReady(addr string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for server at %s: %w", addr, ctx.Err())
		case <-ticker.C:
			conn, err := net.DialTimeout("tcp", addr, 50*time.Millisecond)
			if err == nil {
				_ = conn.Close()
				return nil
			}
		}
	}
}

// WaitForCleanup опрашивает check пока условие не выполнится, иначе
// валит тест по timeout. Используется после обрыва клиента: сервер
// убирает соединение асинхронно, и проверять состояние сразу нельзя.
func WaitForCleanup(t testing.TB, check func() bool, timeout time.Duration) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.Fatalf("cleanup timeout: condition not met within %v", timeout)
		case <-ticker.C:
			if check() {
				return
			}
		}
	}
}

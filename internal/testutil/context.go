package testutil

import (
	"context"
	"testing"
)

// ContextWithCancel создаёт context, привязанный к жизни теста: cancel
// вызывается в t.Cleanup, поэтому серверные goroutine останавливаются
// даже если тест сам до cancel не дошёл.
func ContextWithCancel(t testing.TB) (context.Context, context.CancelFunc) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return ctx, cancel
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/dymax/internal/config"
	"github.com/udisondev/dymax/internal/dymax"
	"github.com/udisondev/dymax/internal/mapserver"
)

const ConfigPath = "config/mapserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Configure slog
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	slog.Info("dymax map server starting")

	// Load config
	cfgPath := ConfigPath
	if p := os.Getenv("DYMAX_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadMapServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Re-apply slog with the configured level
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))
	slog.Info("config loaded", "bind", cfg.BindAddress, "port", cfg.Port, "log_level", cfg.LogLevel)

	// Build the projection table up front
	table := dymax.NewTable()
	conv := dymax.NewConverter(table)
	slog.Info("projection table initialized")

	srv := mapserver.NewServer(cfg, table, conv)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting map server")
		if err := srv.Run(gctx); err != nil {
			return fmt.Errorf("map server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		reportCacheSize(gctx, conv)
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// logLevel maps the config string onto a slog level.
// Unknown values fall back to debug.
func logLevel(s string) slog.Level {
	switch s {
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// reportCacheSize периодически пишет размер memo-кэша в debug лог.
func reportCacheSize(ctx context.Context, conv *dymax.Converter) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			slog.Debug("converter cache", "entries", conv.CacheSize())
		}
	}
}

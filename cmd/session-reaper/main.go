package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/cedarbrook-wellness/content-service/internal/config"
	"github.com/cedarbrook-wellness/content-service/internal/upload/store"
)

// SessionReaper removes spool files left behind by uploads that never
// finished. In-memory chunk sessions expire on their own; the temp
// files written while streaming do not.
type SessionReaper struct {
	dirs     []string
	maxAge   time.Duration
	interval time.Duration
	logger   *slog.Logger
}

func NewSessionReaper(cfg *config.Config, interval time.Duration) *SessionReaper {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	dirs := []string{cfg.Uploads.TempDir}
	for _, category := range []string{
		store.CategoryVideos,
		store.CategoryImages,
		store.CategoryRawImages,
		store.CategorySimpleImages,
	} {
		dirs = append(dirs, filepath.Join(cfg.Uploads.Dir, category))
	}

	return &SessionReaper{
		dirs:     dirs,
		maxAge:   time.Duration(cfg.Uploads.SessionTTLSeconds) * time.Second,
		interval: interval,
		logger:   logger,
	}
}

func (sr *SessionReaper) Start(ctx context.Context) {
	ticker := time.NewTicker(sr.interval)
	defer ticker.Stop()

	sr.logger.Info("Session reaper started",
		"interval", sr.interval.String(),
		"max_age", sr.maxAge.String())

	// Run once immediately on startup
	sr.sweep()

	for {
		select {
		case <-ctx.Done():
			sr.logger.Info("Session reaper shutting down")
			return
		case <-ticker.C:
			sr.sweep()
		}
	}
}

func (sr *SessionReaper) sweep() {
	startTime := time.Now()
	cutoff := startTime.Add(-sr.maxAge)
	removed := 0

	for _, dir := range sr.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Category dirs appear lazily on first upload.
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasPrefix(entry.Name(), ".tmp-") {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.ModTime().After(cutoff) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil {
				sr.logger.Error("Failed to remove stale spool file",
					"path", path,
					"error", err.Error())
				continue
			}
			removed++
		}
	}

	duration := time.Since(startTime)

	sr.logger.Info("Completed spool sweep",
		"files_removed", removed,
		"duration_ms", duration.Milliseconds())
}

func main() {
	// Load config
	cfg := config.MustLoad()

	// Sweep with a 1-minute interval
	reaper := NewSessionReaper(cfg, time.Minute)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		slog.Info("Received shutdown signal")
		cancel()
	}()

	// Start the worker
	reaper.Start(ctx)

	slog.Info("Session reaper stopped")
}

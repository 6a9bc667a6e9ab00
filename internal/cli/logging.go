package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/modforge/modforge/internal/defs"
)

// newLogger builds the process logger. Records always reach stderr at
// warn level, or info with verbose. When logDir is set a timestamped
// file handler is added at debug level so a full trace lands on disk;
// the returned file is owned by the caller.
func newLogger(logDir string, verbose bool) (*slog.Logger, *os.File, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	stderrHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	if logDir == "" {
		return slog.New(stderrHandler), nil, nil
	}

	if err := os.MkdirAll(logDir, defs.DirPerm); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	name := "mod_builder_" + time.Now().Format("20060102_150405") + ".log"
	f, err := os.OpenFile(filepath.Join(logDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, defs.FilePerm)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	fileHandler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(newTeeHandler(stderrHandler, fileHandler)), f, nil
}

// teeHandler fans records out to several handlers so one logger can
// feed stderr and the log file at different levels.
type teeHandler struct {
	handlers []slog.Handler
}

func newTeeHandler(handlers ...slog.Handler) *teeHandler {
	return &teeHandler{handlers: handlers}
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		next[i] = h.WithAttrs(attrs)
	}
	return &teeHandler{handlers: next}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		next[i] = h.WithGroup(name)
	}
	return &teeHandler{handlers: next}
}

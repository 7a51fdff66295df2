// Package logging provides the structured logger used across enroll.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger defines the structured logging interface.
type Logger interface {
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
	Debug(msg string, fields map[string]any)
}

// Options configures a CharmLogger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text or json
}

// CharmLogger writes structured entries through charmbracelet/log.
type CharmLogger struct {
	l *log.Logger
}

// New creates a CharmLogger writing to w.
func New(w io.Writer, opts Options) (*CharmLogger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lv, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level %q: %w", opts.Level, err)
		}
		level = lv
	}

	formatter := log.TextFormatter
	switch strings.ToLower(opts.Format) {
	case "", "text":
	case "json":
		formatter = log.JSONFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", opts.Format)
	}

	l := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		Prefix:          "enroll",
	})
	return &CharmLogger{l: l}, nil
}

// OpenFile creates a logger appending to path, creating parent
// directories as needed. The returned closer releases the file.
func OpenFile(path string, opts Options) (*CharmLogger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	l, err := New(f, opts)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return l, f, nil
}

func (c *CharmLogger) Info(msg string, fields map[string]any)  { c.l.Info(msg, keyvals(fields)...) }
func (c *CharmLogger) Warn(msg string, fields map[string]any)  { c.l.Warn(msg, keyvals(fields)...) }
func (c *CharmLogger) Error(msg string, fields map[string]any) { c.l.Error(msg, keyvals(fields)...) }
func (c *CharmLogger) Debug(msg string, fields map[string]any) { c.l.Debug(msg, keyvals(fields)...) }

// keyvals flattens fields in key order so output is stable.
func keyvals(fields map[string]any) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(fields)*2)
	for _, k := range keys {
		out = append(out, k, fields[k])
	}
	return out
}

type nopLogger struct{}

func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
func (nopLogger) Debug(string, map[string]any) {}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

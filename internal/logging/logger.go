// Package logging builds the application logger and adapts it to the
// interfaces the desktop runtime and the command tree expect.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// New creates a logger that writes to w and filters at level.
// Timestamps are formatted as "HH:MM:SS.ms".
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "sitebuilder",
	})
}

// ParseLevel maps a config or flag value to a log level. "warning" and
// "trace" are accepted as aliases for warn and debug.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return log.DebugLevel, nil
	case "warning":
		return log.WarnLevel, nil
	case "":
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return lvl, nil
}

// WailsLevel converts a log level into the runtime's level scale.
func WailsLevel(l log.Level) wailslogger.LogLevel {
	switch {
	case l <= log.DebugLevel:
		return wailslogger.DEBUG
	case l == log.InfoLevel:
		return wailslogger.INFO
	case l == log.WarnLevel:
		return wailslogger.WARNING
	default:
		return wailslogger.ERROR
	}
}

// WailsLogger forwards the desktop runtime's log lines to a charm logger.
type WailsLogger struct {
	l *log.Logger
}

var _ wailslogger.Logger = (*WailsLogger)(nil)

// NewWailsLogger wraps l. The runtime's own messages are tagged with
// source=wails.
func NewWailsLogger(l *log.Logger) *WailsLogger {
	return &WailsLogger{l: l.With("source", "wails")}
}

func (w *WailsLogger) Print(message string)   { w.l.Print(message) }
func (w *WailsLogger) Trace(message string)   { w.l.Debug(message) }
func (w *WailsLogger) Debug(message string)   { w.l.Debug(message) }
func (w *WailsLogger) Info(message string)    { w.l.Info(message) }
func (w *WailsLogger) Warning(message string) { w.l.Warn(message) }
func (w *WailsLogger) Error(message string)   { w.l.Error(message) }
func (w *WailsLogger) Fatal(message string)   { w.l.Fatal(message) }

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a context carrying l.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger stored in ctx, or log.Default().
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

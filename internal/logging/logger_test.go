package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"

	"sitebuilder/internal/logging"
)

func TestNew_FiltersByLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
		{"warn at error level", log.ErrorLevel, func(l *log.Logger) { l.Warn("test") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(logging.New(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"":        log.InfoLevel,
		"info":    log.InfoLevel,
		"DEBUG":   log.DebugLevel,
		"trace":   log.DebugLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		" error ": log.ErrorLevel,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := logging.ParseLevel("loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestWailsLevel(t *testing.T) {
	if got := logging.WailsLevel(log.DebugLevel); got != wailslogger.DEBUG {
		t.Errorf("debug mapped to %v", got)
	}
	if got := logging.WailsLevel(log.WarnLevel); got != wailslogger.WARNING {
		t.Errorf("warn mapped to %v", got)
	}
	if got := logging.WailsLevel(log.FatalLevel); got != wailslogger.ERROR {
		t.Errorf("fatal mapped to %v", got)
	}
}

func TestWailsLogger_Forwards(t *testing.T) {
	var buf bytes.Buffer
	wl := logging.NewWailsLogger(logging.New(&buf, log.DebugLevel))

	wl.Info("window created")
	wl.Warning("slow frame")

	out := buf.String()
	if !strings.Contains(out, "window created") || !strings.Contains(out, "slow frame") {
		t.Errorf("messages not forwarded: %q", out)
	}
	if !strings.Contains(out, "source=wails") {
		t.Errorf("expected source tag in %q", out)
	}
}

func TestFromContext(t *testing.T) {
	l := log.Default()
	if got := logging.FromContext(logging.WithLogger(context.Background(), l)); got != l {
		t.Error("FromContext should return the stored logger")
	}
	if logging.FromContext(context.Background()) == nil {
		t.Error("FromContext should fall back to the default logger")
	}
}

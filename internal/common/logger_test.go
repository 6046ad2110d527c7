package common

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    LogLevel
		expected slog.Level
	}{
		{"error level", LogLevelError, slog.LevelError},
		{"warn level", LogLevelWarn, slog.LevelWarn},
		{"info level", LogLevelInfo, slog.LevelInfo},
		{"debug level", LogLevelDebug, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.ToSlogLevel(); got != tt.expected {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewLoggerTo_Formats(t *testing.T) {
	for _, format := range []string{"text", "json", "color", "bogus"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLoggerTo(&buf, LogLevelInfo, format)
			l.Info("hello", "k", "v")
			if !strings.Contains(buf.String(), "hello") {
				t.Fatalf("expected message in output, got %q", buf.String())
			}
		})
	}
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, LogLevelWarn, "text")
	l.Info("quiet")
	l.Debug("quieter")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}
	l.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Fatalf("expected warn output, got %q", buf.String())
	}
}

func TestLogger_WithRequestMasksURL(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, LogLevelDebug, "text")
	l.WithRequest("GET", "https://x.test/api/search?api_key=secret123&query=pizza").Debug("sending")
	out := buf.String()
	if strings.Contains(out, "secret123") {
		t.Fatalf("api key leaked into log: %s", out)
	}
	if !strings.Contains(out, "query=pizza") {
		t.Fatalf("expected non-secret query to survive, got %s", out)
	}

	buf.Reset()
	l.EnableMasking(false)
	l.WithRequest("GET", "https://x.test/api/search?api_key=secret123").Debug("sending")
	if !strings.Contains(buf.String(), "secret123") {
		t.Fatalf("expected raw url with masking disabled, got %s", buf.String())
	}
}

func TestColorHandler_MasksSensitiveAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, LogLevelInfo, "color")
	l.WithComponent("transport").Info("headers", "x-api-key", "abc", "status", 200)
	out := buf.String()
	if strings.Contains(out, "abc") {
		t.Fatalf("expected x-api-key to be masked, got %q", out)
	}
	if !strings.Contains(out, "component=\"transport\"") || !strings.Contains(out, "status=200") {
		t.Fatalf("unexpected color output %q", out)
	}
}

func TestSetDefaultLogger(t *testing.T) {
	orig := GetLogger()
	defer SetDefaultLogger(orig)

	l := NewLogger(LogLevelDebug)
	SetDefaultLogger(l)
	if GetLogger() != l {
		t.Fatal("expected default logger to be replaced")
	}
	SetDefaultLogger(nil)
	if GetLogger() != l {
		t.Fatal("nil must not replace the default logger")
	}
}

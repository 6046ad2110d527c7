package common

import (
	"io"
	"log/slog"
	"os"
)

// LogLevel represents logging verbosity levels
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LogLevelError:
		return "error"
	case LogLevelWarn:
		return "warn"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	default:
		return "info"
	}
}

// ToSlogLevel converts LogLevel to slog.Level
func (l LogLevel) ToSlogLevel() slog.Level {
	switch l {
	case LogLevelError:
		return slog.LevelError
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Logger wraps slog.Logger with the level it was built for and the
// masker applied to request attributes.
type Logger struct {
	*slog.Logger
	level  LogLevel
	masker *Masker
}

// NewLogger creates a text logger writing to stderr.
func NewLogger(level LogLevel) *Logger {
	return NewLoggerTo(os.Stderr, level, "text")
}

// NewJSONLogger creates a structured logger with JSON output
func NewJSONLogger(level LogLevel) *Logger {
	return NewLoggerTo(os.Stderr, level, "json")
}

// NewColorLogger creates a logger with colorized terminal output
func NewColorLogger(level LogLevel) *Logger {
	return NewLoggerTo(os.Stderr, level, "color")
}

// NewLoggerTo builds a logger for the given writer. format is one of
// "text", "json" or "color"; anything else falls back to text.
func NewLoggerTo(w io.Writer, level LogLevel, format string) *Logger {
	opts := &slog.HandlerOptions{Level: level.ToSlogLevel()}
	masker := NewMasker()

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "color":
		ch := NewColorHandler(w, opts)
		ch.SetMasker(masker)
		handler = ch
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
		level:  level,
		masker: masker,
	}
}

// Level returns the current log level
func (l *Logger) Level() LogLevel {
	return l.level
}

// EnableMasking toggles masking of secrets in request attributes.
func (l *Logger) EnableMasking(enabled bool) {
	l.masker.SetEnabled(enabled)
}

// Masker returns the masker used by this logger.
func (l *Logger) Masker() *Masker {
	return l.masker
}

func (l *Logger) with(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
		level:  l.level,
		masker: l.masker,
	}
}

// WithComponent returns a logger with component context
func (l *Logger) WithComponent(component string) *Logger {
	return l.with("component", component)
}

// WithEndpoint returns a logger tagged with the remote endpoint path
func (l *Logger) WithEndpoint(endpoint string) *Logger {
	return l.with("endpoint", endpoint)
}

// WithRequest returns a logger with HTTP request context. The url is
// passed through the masker so api keys in query strings never reach the output.
func (l *Logger) WithRequest(method, url string) *Logger {
	return l.with("method", method, "url", l.masker.MaskString(url))
}

var defaultLogger = NewLogger(LogLevelWarn)

// SetDefaultLogger sets the global default logger
func SetDefaultLogger(logger *Logger) {
	if logger == nil {
		return
	}
	defaultLogger = logger
}

// GetLogger returns the default logger
func GetLogger() *Logger {
	return defaultLogger
}

// Package logging provides structured logging using Go's slog package.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/FocuswithJustin/bibleref/core/errors"
)

// defaultLogger is the global logger instance.
var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	// Library default: warnings and above, text, on stderr.
	InitLogger(LevelWarn, FormatText)
}

// Level represents a log level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Format represents a log output format.
type Format int

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = iota
	// FormatText outputs logs in human-readable text format.
	FormatText
)

// NewLogger builds a logger writing to w.
func NewLogger(w io.Writer, level Level, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level.slogLevel(),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// InitLogger replaces the global logger with one writing to stderr.
func InitLogger(level Level, format Format) {
	SetLogger(NewLogger(os.Stderr, level, format))
}

// SetLogger replaces the global logger. A nil logger is ignored.
func SetLogger(l *slog.Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// GetLogger returns the global logger instance.
func GetLogger() *slog.Logger {
	return defaultLogger.Load()
}

// Diagnostic logs one parse diagnostic at debug level.
func Diagnostic(logger *slog.Logger, input string, d errors.Diagnostic) {
	args := []any{
		"input", input,
		"kind", string(d.Kind),
		"severity", d.Severity.String(),
	}
	if d.Ref != "" {
		args = append(args, "ref", d.Ref)
	}
	if d.Offset >= 0 {
		args = append(args, "offset", d.Offset)
	}
	logger.Debug(d.Message, args...)
}

// ParseCompleted logs the outcome of one parse call.
func ParseCompleted(logger *slog.Logger, input string, ok bool, items, diagnostics int) {
	logger.Debug("parse_completed",
		"input", input,
		"ok", ok,
		"items", items,
		"diagnostics", diagnostics,
	)
}

// ProfileLoaded logs the registration of a punctuation profile.
func ProfileLoaded(name, source string) {
	GetLogger().Debug("profile_loaded", "profile", name, "source", source)
}

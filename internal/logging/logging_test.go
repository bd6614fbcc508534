package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/FocuswithJustin/bibleref/core/errors"
)

// captureLogOutput swaps the global logger for one writing JSON to a buffer
// while f runs.
func captureLogOutput(t *testing.T, f func()) string {
	t.Helper()
	var buf bytes.Buffer
	old := GetLogger()
	SetLogger(NewLogger(&buf, LevelDebug, FormatJSON))
	defer SetLogger(old)
	f()
	return buf.String()
}

func decodeLine(t *testing.T, line string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", line, err)
	}
	return m
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
	}{
		{"Debug level JSON format", LevelDebug, FormatJSON},
		{"Info level JSON format", LevelInfo, FormatJSON},
		{"Warn level Text format", LevelWarn, FormatText},
		{"Error level Text format", LevelError, FormatText},
		{"Default level (invalid value)", Level(999), FormatJSON},
	}

	old := GetLogger()
	defer SetLogger(old)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level, tt.format)
			if GetLogger() == nil {
				t.Error("Expected logger to be initialized, got nil")
			}
		})
	}
}

func TestSetLoggerIgnoresNil(t *testing.T) {
	before := GetLogger()
	SetLogger(nil)
	if GetLogger() != before {
		t.Error("SetLogger(nil) replaced the global logger")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, LevelWarn, FormatText)
	l.Info("hidden")
	l.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestReplaceAttrTimestamp(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, LevelInfo, FormatJSON).Info("tick")
	m := decodeLine(t, strings.TrimSpace(buf.String()))
	ts, ok := m["time"].(string)
	if !ok {
		t.Fatalf("time attribute missing: %v", m)
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("time %q is not RFC3339: %v", ts, err)
	}
}

func TestDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, LevelDebug, FormatJSON)

	d := errors.NewDiagnostic(errors.DuplicateReference, "Rev.1.1", "listed 2 times")
	Diagnostic(l, "Rev. 1:1; 1:1", d)
	m := decodeLine(t, strings.TrimSpace(buf.String()))

	want := map[string]any{
		"msg":      "listed 2 times",
		"input":    "Rev. 1:1; 1:1",
		"kind":     "duplicate-reference",
		"severity": "warning",
		"ref":      "Rev.1.1",
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("%s = %v, want %v", k, m[k], v)
		}
	}
	if _, ok := m["offset"]; ok {
		t.Error("offset logged for a non-positional diagnostic")
	}

	buf.Reset()
	Diagnostic(l, "Mat?", errors.NewDiagnostic(errors.UnexpectedCharacter, "", "unexpected '?'").At(3))
	m = decodeLine(t, strings.TrimSpace(buf.String()))
	if m["offset"] != float64(3) {
		t.Errorf("offset = %v, want 3", m["offset"])
	}
	if _, ok := m["ref"]; ok {
		t.Error("empty ref logged")
	}
}

func TestParseCompleted(t *testing.T) {
	var buf bytes.Buffer
	ParseCompleted(NewLogger(&buf, LevelDebug, FormatJSON), "Mat. 7:3", true, 1, 0)
	m := decodeLine(t, strings.TrimSpace(buf.String()))
	if m["msg"] != "parse_completed" || m["ok"] != true || m["items"] != float64(1) {
		t.Errorf("unexpected record %v", m)
	}
}

func TestParseCompletedRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	ParseCompleted(NewLogger(&buf, LevelInfo, FormatJSON), "Mat. 7:3", true, 1, 0)
	if buf.Len() != 0 {
		t.Errorf("debug record written at info level: %q", buf.String())
	}
}

func TestProfileLoaded(t *testing.T) {
	out := captureLogOutput(t, func() {
		ProfileLoaded("English", "builtin")
	})
	if !strings.Contains(out, `"profile":"English"`) || !strings.Contains(out, `"source":"builtin"`) {
		t.Errorf("ProfileLoaded output = %q", out)
	}
}

func TestLevelConstants(t *testing.T) {
	tests := []struct {
		level Level
		want  slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{Level(42), slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := tt.level.slogLevel(); got != tt.want {
			t.Errorf("Level(%d).slogLevel() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

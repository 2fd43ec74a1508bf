package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}

	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf, Format: FormatText, Level: slog.LevelWarn})

	l.Info("hidden")
	l.Warn("shown", "binder", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected info record to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "binder=3") {
		t.Fatalf("expected warn record with attrs, got %q", out)
	}
}

func TestOpenFileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "binders.log")

	l, err := OpenFile(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("failed to open log file: %v", err)
	}
	l.Info("store opened", "path", "binders.sqlite")
	if err := l.Close(); err != nil {
		t.Fatalf("failed to close logger: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"store opened"`) {
		t.Fatalf("expected JSON record, got %q", string(data))
	}
}

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		got := parseLevel(in)
		if got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := &slogger{l: slog.New(slog.NewJSONHandler(&buf, nil))}
	l.Info(context.Background(), "catalog loaded", String("source", "hyg"), Int("stars", 5000))

	out := buf.String()
	if !strings.Contains(out, "catalog loaded") || !strings.Contains(out, "hyg") {
		t.Errorf("expected JSON log line to contain message and fields, got: %s", out)
	}
}

func TestWithAppendsFields(t *testing.T) {
	var buf bytes.Buffer
	base := &slogger{l: slog.New(slog.NewTextHandler(&buf, nil))}
	scoped := base.With(String("component", "satellite"))
	scoped.Warn(context.Background(), "decayed TLE")

	if !strings.Contains(buf.String(), "component=satellite") {
		t.Errorf("expected scoped field in output, got: %s", buf.String())
	}
}

func TestNoopDoesNotPanic(t *testing.T) {
	n := Noop()
	n.Debug(context.Background(), "x")
	n.Info(context.Background(), "x")
	n.Warn(context.Background(), "x")
	n.Error(context.Background(), "x")
	n.With(String("a", "b")).Info(context.Background(), "x")
}

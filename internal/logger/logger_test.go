package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWithWriter_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if entry["message"] != "hello" {
		t.Errorf("message = %v, want hello", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("missing timestamp key")
	}
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("warn", &buf)

	log.Info("should be dropped")
	log.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("warn message missing")
	}
}

func TestWarnLevelRenamed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)

	log.Warn("careful")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["level"] != "warning" {
		t.Errorf("level = %v, want warning", entry["level"])
	}
}

func TestWithFieldHelpers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)

	log.WithModule("dialog").WithSessionID("abc123").WithField("step", "choose_domain").Info("turn")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["module"] != "dialog" {
		t.Errorf("module = %v, want dialog", entry["module"])
	}
	if entry["session_id"] != "abc123" {
		t.Errorf("session_id = %v, want abc123", entry["session_id"])
	}
	if entry["step"] != "choose_domain" {
		t.Errorf("step = %v, want choose_domain", entry["step"])
	}
}

func TestTeeFanOut(t *testing.T) {
	t.Parallel()

	var buf1, buf2 bytes.Buffer
	h1 := slog.NewJSONHandler(&buf1, &slog.HandlerOptions{Level: slog.LevelDebug})
	h2 := slog.NewJSONHandler(&buf2, &slog.HandlerOptions{Level: slog.LevelError})

	log := slog.New(newTee(h1, h2))
	log.Debug("debug only")
	log.Error("both")

	if !strings.Contains(buf1.String(), "debug only") {
		t.Error("debug handler should receive debug record")
	}
	if strings.Contains(buf2.String(), "debug only") {
		t.Error("error handler should not receive debug record")
	}
	if !strings.Contains(buf1.String(), "both") || !strings.Contains(buf2.String(), "both") {
		t.Error("both handlers should receive error record")
	}
}

func TestTeeDropsNilHandlers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})

	combined := newTee(nil, h, nil)
	if combined != slog.Handler(h) {
		t.Error("a lone surviving handler should be returned unwrapped")
	}

	log := slog.New(combined)
	log.Info("alive")

	if !strings.Contains(buf.String(), "alive") {
		t.Error("non-nil handler should receive record")
	}
}

func TestTeeWithAttrsReachesAllTargets(t *testing.T) {
	t.Parallel()

	var buf1, buf2 bytes.Buffer
	h1 := slog.NewJSONHandler(&buf1, &slog.HandlerOptions{Level: slog.LevelInfo})
	h2 := slog.NewJSONHandler(&buf2, &slog.HandlerOptions{Level: slog.LevelInfo})

	log := slog.New(newTee(h1, h2)).With("session_id", "s-1")
	log.Info("tagged")

	for i, out := range []string{buf1.String(), buf2.String()} {
		if !strings.Contains(out, "s-1") {
			t.Errorf("handler %d missing attached attribute: %s", i+1, out)
		}
	}
}

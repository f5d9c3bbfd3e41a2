package logging

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestNewWritesJSONRecords(t *testing.T) {
	dir := t.TempDir()
	l, err := New(Options{Level: "info", Dir: dir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.Info("warning raised", "code", "34-00-255", "phase", 5)

	data, err := os.ReadFile(l.LogFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := strings.TrimSpace(string(data))

	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if rec["msg"] != "warning raised" {
		t.Fatalf("expected msg 'warning raised', got %v", rec["msg"])
	}
	if rec["code"] != "34-00-255" {
		t.Fatalf("expected code attribute, got %v", rec["code"])
	}
}

func TestNewRespectsLevel(t *testing.T) {
	dir := t.TempDir()
	l, err := New(Options{Level: "warn", Dir: dir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.Info("suppressed")
	l.Warn("kept")

	data, _ := os.ReadFile(l.LogFile)
	if strings.Contains(string(data), "suppressed") {
		t.Fatalf("info record should be filtered at warn level")
	}
	if !strings.Contains(string(data), "kept") {
		t.Fatalf("warn record missing from log file")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "verbose", Dir: t.TempDir()}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestWithCarriesAttributes(t *testing.T) {
	dir := t.TempDir()
	l, err := New(Options{Dir: dir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.With("run_id", "abc123").Info("tick")

	data, _ := os.ReadFile(l.LogFile)
	if !strings.Contains(string(data), `"run_id":"abc123"`) {
		t.Fatalf("child logger attribute missing: %s", data)
	}
}

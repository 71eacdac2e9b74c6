package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestInit_DefaultLevel_Info(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Output: &buf})

	Debug("hidden")
	Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("info message not logged at info level")
	}
}

func TestInit_Debug_EnablesDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Debug: true, Output: &buf})

	Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Error("debug message not logged with Debug option")
	}
}

func TestInit_Quiet_OnlyErrors(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Quiet: true, Output: &buf})

	Info("suppressed")
	Warn("also suppressed")
	Error("kept")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Error("non-error message logged in quiet mode")
	}
	if !strings.Contains(out, "kept") {
		t.Error("error message not logged in quiet mode")
	}
}

func TestInit_JSON_ProducesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{JSON: true, Output: &buf})

	Info("structured", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "structured" {
		t.Errorf("msg = %v, want %q", entry["msg"], "structured")
	}
	if entry["key"] != "value" {
		t.Errorf("key = %v, want %q", entry["key"], "value")
	}
}

func TestInit_CustomLogger_Overrides(t *testing.T) {
	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, nil))
	Init(Options{Logger: custom, Quiet: true})

	Info("via custom")

	if !strings.Contains(buf.String(), "via custom") {
		t.Error("custom logger not used")
	}
}

func TestSetLogger_ReplacesDefault(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	Info("replaced")

	if !strings.Contains(buf.String(), "replaced") {
		t.Error("SetLogger did not replace the default logger")
	}
}

func TestWith_ReturnsLoggerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Output: &buf})

	With("site", "acme.io").Info("attached")

	out := buf.String()
	if !strings.Contains(out, "site=acme.io") {
		t.Errorf("attribute missing from output: %q", out)
	}
}

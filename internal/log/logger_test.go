package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
)

func TestSetup(t *testing.T) {
	// Reset logger for testing
	logger = nil
	once = *new(sync.Once)

	Setup("DEBUG", "json")
	if logger == nil {
		t.Fatal("Logger should not be nil")
	}
}

func TestSetupTextFormat(t *testing.T) {
	logger = nil
	once = *new(sync.Once)

	Setup("INFO", "text")
	if logger == nil {
		t.Fatal("Logger should not be nil")
	}
	if _, ok := logger.Handler().(*slog.TextHandler); !ok {
		t.Errorf("Expected *slog.TextHandler, got %T", logger.Handler())
	}
}

func TestSetupDefaultsToJSON(t *testing.T) {
	logger = nil
	once = *new(sync.Once)

	Setup("INFO", "")
	if _, ok := logger.Handler().(*slog.JSONHandler); !ok {
		t.Errorf("Expected *slog.JSONHandler, got %T", logger.Handler())
	}
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, nil)
	l := slog.New(h)

	// Inject this logger as the global logger for the test
	logger = l

	l2 := WithComponent("test-comp")
	l2.Info("hello")

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode JSON: %v", err)
	}

	if out["component"] != "test-comp" {
		t.Errorf("Expected component 'test-comp', got %v", out["component"])
	}
	if out["msg"] != "hello" {
		t.Errorf("Expected msg 'hello', got %v", out["msg"])
	}
}

func TestWithWorkspace(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, nil)
	logger = slog.New(h)

	l2 := WithWorkspace("Tasks")
	l2.Info("workspace msg")

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode JSON: %v", err)
	}

	if out["workspace"] != "Tasks" {
		t.Errorf("Expected workspace 'Tasks', got %v", out["workspace"])
	}
}

func TestWithRule(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, nil)
	logger = slog.New(h)

	l2 := WithRule("naming")
	l2.Info("rule msg")

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode JSON: %v", err)
	}

	if out["rule"] != "naming" {
		t.Errorf("Expected rule 'naming', got %v", out["rule"])
	}
}

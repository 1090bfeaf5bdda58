package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, err := New(Config{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("lesson requested")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := strings.TrimSpace(string(data))
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %q", line)
	}
	if entry["msg"] != "lesson requested" || entry["level"] != "DEBUG" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNewDefaultsToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	for _, lvl := range []string{"", "loud"} {
		logger, err := New(Config{Level: lvl, File: path})
		if err != nil {
			t.Fatalf("new logger: %v", err)
		}
		if logger.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("level %q: debug should be disabled", lvl)
		}
		if !logger.Core().Enabled(zapcore.InfoLevel) {
			t.Fatalf("level %q: info should be enabled", lvl)
		}
	}
}

func TestDefaultLogPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	p, err := DefaultLogPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if p != "/tmp/state/mechdyane/mechdyane.log" {
		t.Fatalf("path = %q", p)
	}
}

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/go-drift/tk/cmd/tk/internal/config"
)

func TestNew_ConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default().Log
	cfg.Level = "warn"

	log, closeFn, err := New(cfg, &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("hidden")
	log.Warn("shown", zap.String("type", "button"))
	closeFn()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "button") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tk.log")
	cfg := config.Default().Log
	cfg.File = path

	var console bytes.Buffer
	log, closeFn, err := New(cfg, &console)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("widget created", zap.String("type", "label"))
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("log line is not JSON: %q", data)
	}
	if entry["msg"] != "widget created" || entry["type"] != "label" || entry["level"] != "info" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNew_BadLevel(t *testing.T) {
	cfg := config.Default().Log
	cfg.Level = "loud"
	if _, _, err := New(cfg, nil); err == nil {
		t.Error("expected error")
	}
}

func TestNew_ReplacesGlobals(t *testing.T) {
	var buf bytes.Buffer
	_, closeFn, err := New(config.Default().Log, &buf)
	if err != nil {
		t.Fatal(err)
	}
	zap.L().Info("via global")
	closeFn()
	if !strings.Contains(buf.String(), "via global") {
		t.Errorf("global logger not installed: %q", buf.String())
	}
}

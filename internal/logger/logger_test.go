package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCreatesLogDirectory(t *testing.T) {
	t.Cleanup(func() { Logger = nil })
	dir := filepath.Join(t.TempDir(), "logs")

	if err := Init(Config{Dir: dir}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected log directory %q to exist: %v", dir, err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Init")
	}
}

func TestDebugLevelWritesToFile(t *testing.T) {
	t.Cleanup(func() { Logger = nil })
	dir := t.TempDir()

	if err := Init(Config{Dir: dir, Debug: true}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Debug("task added", "id", "abc")

	contents, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(contents), "task added") {
		t.Fatalf("log file missing debug line: %q", contents)
	}
}

func TestWarnLevelDropsDebug(t *testing.T) {
	t.Cleanup(func() { Logger = nil })
	dir := t.TempDir()

	if err := Init(Config{Dir: dir}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Debug("hidden line")
	Warn("visible line")

	contents, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(contents), "hidden line") {
		t.Fatalf("debug line written at warn level: %q", contents)
	}
	if !strings.Contains(string(contents), "visible line") {
		t.Fatalf("warn line missing: %q", contents)
	}
}

func TestHelpersWithoutInit(t *testing.T) {
	Logger = nil

	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}

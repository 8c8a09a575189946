package logging

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// resetForTest points the package at a temp directory and clears the
// once-guarded state so each test starts from scratch.
func resetForTest(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	origRoot := logRoot
	logRoot = func() (string, error) { return dir, nil }
	initOnce = new(sync.Once)
	sessionIDOnce = new(sync.Once)
	initErr = nil
	logDir = ""
	sessionID = ""

	t.Cleanup(func() {
		logRoot = origRoot
		initOnce = new(sync.Once)
		sessionIDOnce = new(sync.Once)
		initErr = nil
		logDir = ""
		sessionID = ""
	})
	return dir
}

func TestNewWritesToSessionFile(t *testing.T) {
	dir := resetForTest(t)

	logger, err := New("builder")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer logger.Close()

	logger.Infof("plan created with %d entries", 2)
	logger.Warnf("no execution target set")

	if logger.Path() == "" {
		t.Fatal("expected a log file path")
	}
	if filepath.Dir(logger.Path()) != dir {
		t.Errorf("log file %s not under %s", logger.Path(), dir)
	}
	if !strings.HasSuffix(logger.Path(), "-selenium.log") {
		t.Errorf("unexpected log file name %s", logger.Path())
	}

	data, err := os.ReadFile(logger.Path())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "[builder] [INFO] plan created with 2 entries") {
		t.Errorf("missing info line in %q", content)
	}
	if !strings.Contains(content, "[builder] [WARN] no execution target set") {
		t.Errorf("missing warn line in %q", content)
	}
}

func TestComponentsShareSessionFile(t *testing.T) {
	resetForTest(t)

	first, err := New("cli")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer first.Close()

	second, err := New("config")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer second.Close()

	if first.Path() != second.Path() {
		t.Errorf("components should share the session file: %s vs %s", first.Path(), second.Path())
	}
	if first.SessionID() != second.SessionID() {
		t.Errorf("components should share the session ID")
	}

	first.Infof("from cli")
	second.Infof("from config")

	data, err := os.ReadFile(first.Path())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "[cli]") || !strings.Contains(string(data), "[config]") {
		t.Errorf("expected both components in %q", string(data))
	}
}

func TestFallbackToStderr(t *testing.T) {
	resetForTest(t)
	logRoot = func() (string, error) { return "", os.ErrPermission }
	initOnce = new(sync.Once)

	logger, err := New("builder")
	if err == nil {
		t.Fatal("expected an error in fallback mode")
	}
	if logger == nil {
		t.Fatal("fallback must still return a usable logger")
	}
	defer logger.Close()

	if logger.Path() != "" {
		t.Errorf("fallback logger should not report a file path, got %s", logger.Path())
	}
	logger.Errorf("still works")
}

func TestCloseIsIdempotent(t *testing.T) {
	resetForTest(t)

	logger, err := New("builder")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

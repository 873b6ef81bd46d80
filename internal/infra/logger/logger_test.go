package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesToFile(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	want := filepath.Join(root, ".webpres", "logs", "webpres.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	L().Info("request.routed", "service", "user")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "logger.initialized") || !strings.Contains(out, "request.routed") {
		t.Fatalf("expected both events in log, got:\n%s", out)
	}
	if Path() != "" {
		t.Fatalf("expected path reset after cleanup")
	}
}

func TestSetupWithWriterAndDebug(t *testing.T) {
	var buf bytes.Buffer

	cleanup, err := Setup(Config{Writer: &buf, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	L().Debug("page.rendered", "fragments", 4)

	out := buf.String()
	if !strings.Contains(out, "page.rendered") {
		t.Fatalf("expected debug line, got:\n%s", out)
	}
	if !strings.Contains(out, `"source"`) {
		t.Fatalf("expected source attribute in debug mode, got:\n%s", out)
	}
}

func TestInfoLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer

	cleanup, err := Setup(Config{Writer: &buf})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	L().Debug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("expected debug line to be dropped at info level")
	}
}

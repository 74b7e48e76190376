package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/almanac/pkg/config"
)

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, err := New(config.Log{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.Core().Enabled(-1) {
		t.Fatalf("expected no-op logger")
	}
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "almanac.log")
	logger, err := New(config.Log{Path: path, Level: "debug", MaxSizeMB: 1, MaxBackups: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("event applied")
	_ = logger.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(b)
	if !strings.Contains(got, `"msg":"event applied"`) || !strings.Contains(got, `"timestamp"`) {
		t.Fatalf("unexpected log contents %q", got)
	}
}

func TestNewUnknownLevelDefaultsToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "almanac.log")
	logger, err := New(config.Log{Path: path, Level: "chatty"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.Core().Enabled(-1) {
		t.Fatalf("debug should be disabled at info level")
	}
	if !logger.Core().Enabled(0) {
		t.Fatalf("info should be enabled")
	}
}

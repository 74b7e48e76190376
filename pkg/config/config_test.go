package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("ALMANAC_CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "conf")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	body := []byte("log:\n  path: ~/logs/almanac.log\n  level: debug\nui:\n  week_numbers: true\n")
	if err := os.WriteFile(filepath.Join(cfgDir, ".almanac.yaml"), body, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("ALMANAC_CONFIG_PATH", cfgDir)
	t.Setenv("ALMANAC_UI_ALT_SCREEN", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := filepath.Join(dir, "logs", "almanac.log"); cfg.Log.Path != want {
		t.Errorf("log path = %q, want %q", cfg.Log.Path, want)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	if !cfg.UI.WeekNumbers {
		t.Errorf("expected week numbers from file")
	}
	if cfg.UI.AltScreen {
		t.Errorf("expected env to disable alt screen")
	}
	if cfg.Log.MaxBackups != 3 {
		t.Errorf("expected default max backups, got %d", cfg.Log.MaxBackups)
	}
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, ".almanac.yaml"), []byte("log: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("ALMANAC_CONFIG_PATH", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}

package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "microhook.toml")
	data := `
arch = "arm"
os = "linux"
script = "hooks.lua"
coverage = "cov.%s.drcov"
base = 0x8000
verbose = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Arch != "arm" || cfg.OS != "linux" {
		t.Errorf("bad target: %s/%s", cfg.Arch, cfg.OS)
	}
	if cfg.Script != "hooks.lua" || cfg.Coverage != "cov.%s.drcov" {
		t.Errorf("bad paths: %s %s", cfg.Script, cfg.Coverage)
	}
	if cfg.Base != 0x8000 {
		t.Errorf("bad base: %#x", cfg.Base)
	}
	if !cfg.Verbose {
		t.Error("verbose not set")
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := LoadConfig("/does/not/exist.toml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("arch = [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected parse error")
	}
}

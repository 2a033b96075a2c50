package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Grid.Size != 1 {
		t.Errorf("expected grid size 1, got %v", cfg.Grid.Size)
	}
	if cfg.Grid.Dynamic {
		t.Error("default grid snapping should be on-drop, not dynamic")
	}
	if cfg.Zoom.Min != 0.25 || cfg.Zoom.Max != 4 {
		t.Errorf("expected zoom limits 0.25..4, got %v..%v", cfg.Zoom.Min, cfg.Zoom.Max)
	}
	if cfg.Zoom.Intensity != 0.1 {
		t.Errorf("expected wheel intensity 0.1, got %v", cfg.Zoom.Intensity)
	}
	if cfg.Board.PanClamped() {
		t.Error("default board should have no pan clamp")
	}
	if !cfg.UI.Color {
		t.Error("default color should be true")
	}
}

func TestConfigDir(t *testing.T) {
	// Test with XDG_CONFIG_HOME set
	t.Setenv("XDG_CONFIG_HOME", "/tmp/test-xdg")
	dir := ConfigDir()
	if dir != "/tmp/test-xdg/plugboard" {
		t.Errorf("expected /tmp/test-xdg/plugboard, got %q", dir)
	}

	// Test without XDG_CONFIG_HOME
	t.Setenv("XDG_CONFIG_HOME", "")
	dir = ConfigDir()
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".config", "plugboard")
	if dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := Default()
	cfg.Grid.Size = 5
	cfg.Zoom.Max = 2

	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Load()
	if loaded.Grid.Size != 5 {
		t.Errorf("expected grid size 5, got %v", loaded.Grid.Size)
	}
	if loaded.Zoom.Max != 2 {
		t.Errorf("expected zoom max 2, got %v", loaded.Zoom.Max)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if cfg.Zoom.Min != Default().Zoom.Min {
		t.Error("missing config should fall back to defaults")
	}
}

func TestLoadFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	os.WriteFile(path, []byte("[grid]\nsize = 10\ndynamic = true\n"), 0o644)

	cfg := LoadFrom(path)
	if cfg.Grid.Size != 10 || !cfg.Grid.Dynamic {
		t.Errorf("expected grid {10 true}, got %+v", cfg.Grid)
	}
	// Unset sections keep defaults
	if cfg.Zoom.Intensity != 0.1 {
		t.Errorf("expected default intensity, got %v", cfg.Zoom.Intensity)
	}
}

func TestPanClamped(t *testing.T) {
	b := BoardConfig{Left: -100, Top: -50, Right: 100, Bottom: 50}
	if !b.PanClamped() {
		t.Error("bounded board should report clamped")
	}
}

package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.System != "lorenz" {
		t.Errorf("expected system lorenz, got %s", cfg.System)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Mandelbrot.MaxIter != 1000 {
		t.Errorf("expected max_iter 1000, got %d", cfg.Mandelbrot.MaxIter)
	}
	if cfg.Logistic.RMin != 2.5 || cfg.Logistic.RMax != 4.0 {
		t.Errorf("unexpected sweep range [%g,%g]", cfg.Logistic.RMin, cfg.Logistic.RMax)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.System = "rossler"
	cfg.Dt = 0.005
	cfg.InitState.Z = 12.5
	cfg.Logistic.Steps = 2000

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.System != "rossler" {
		t.Errorf("system = %s, want rossler", loaded.System)
	}
	if loaded.Dt != 0.005 {
		t.Errorf("dt = %f, want 0.005", loaded.Dt)
	}
	if loaded.InitState.Z != 12.5 {
		t.Errorf("z = %f, want 12.5", loaded.InitState.Z)
	}
	if loaded.Logistic.Steps != 2000 {
		t.Errorf("steps = %d, want 2000", loaded.Logistic.Steps)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lorenz", "classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Integrator != "euler" {
		t.Errorf("expected euler, got %s", cfg.Integrator)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("lorenz", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "classic") != nil {
		t.Error("expected nil for nonexistent system")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("lorenz")) == 0 {
		t.Error("expected presets for lorenz")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent system")
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	embedded, err := decode(defaultYAML)
	if err != nil {
		t.Fatalf("decode(defaultYAML) failed: %v", err)
	}
	def := Default()
	if embedded.Simulation != def.Simulation {
		t.Errorf("simulation: embedded %+v, hardcoded %+v", embedded.Simulation, def.Simulation)
	}
	if embedded.Server != def.Server || embedded.Storage != def.Storage || embedded.Patterns != def.Patterns {
		t.Error("embedded and hardcoded defaults disagree")
	}
	if len(embedded.Palette) != len(def.Palette) {
		t.Errorf("palette size: embedded %d, hardcoded %d", len(embedded.Palette), len(def.Palette))
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridlab.yaml")
	content := "simulation:\n  max_steps: 42\nserver:\n  address: \":9999\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Simulation.MaxSteps != 42 {
		t.Errorf("MaxSteps = %d, expected 42", cfg.Simulation.MaxSteps)
	}
	if cfg.Server.Address != ":9999" {
		t.Errorf("Address = %q", cfg.Server.Address)
	}
	// Unset values keep their defaults.
	if cfg.Simulation.TickRate != Default().Simulation.TickRate {
		t.Errorf("TickRate = %d, expected default", cfg.Simulation.TickRate)
	}
	if cfg.Server.IdleTimeout() != 30*time.Minute {
		t.Errorf("IdleTimeout() = %v", cfg.Server.IdleTimeout())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("simulation: [1, 2"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for invalid YAML")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("~/.gridlab/runs.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if strings.HasPrefix(got, "~") || !strings.HasSuffix(got, filepath.Join(".gridlab", "runs.db")) {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got, _ := ExpandHome("./runs.db"); got != "./runs.db" {
		t.Errorf("relative paths should be unchanged, got %q", got)
	}
}

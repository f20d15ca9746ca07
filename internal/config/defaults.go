package config

import (
	_ "embed"
)

//go:embed defaults/gridlab.yaml
var defaultYAML []byte

// Default returns the hard-coded default configuration.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			MaxSteps: 500,
			TickRate: 8,
		},
		Storage: StorageConfig{
			Path: "~/.gridlab/runs.db",
		},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
		Patterns: PatternsConfig{
			Dir: "~/.gridlab/patterns",
		},
		Log: LogConfig{
			Level: "info",
		},
		Palette: map[string]string{
			".": "238",
			"#": "10",
			"L": "12",
		},
	}
}

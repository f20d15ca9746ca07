// Package config provides YAML-based configuration loading for gridlab.
package config

import "time"

// Config is the complete gridlab configuration.
type Config struct {
	Simulation SimulationConfig  `yaml:"simulation"`
	Storage    StorageConfig     `yaml:"storage"`
	Server     ServerConfig      `yaml:"server"`
	Patterns   PatternsConfig    `yaml:"patterns"`
	Log        LogConfig         `yaml:"log"`
	Palette    map[string]string `yaml:"palette"` // Tile glyph -> terminal color
}

// SimulationConfig controls how runs are stepped.
type SimulationConfig struct {
	MaxSteps int `yaml:"max_steps"` // 0 = run until the board settles
	TickRate int `yaml:"tick_rate"` // Generations per second in the viewer
}

// StorageConfig locates the run history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures the SSH viewer.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// PatternsConfig locates user pattern files.
type PatternsConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

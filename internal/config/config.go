// Package config resolves tool settings from flags, environment
// variables and an optional JSON config file, in that priority order.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const configFileName = "config.json"

// Environment overrides honored for collaborator roots.
const (
	EnvOutputDir = "MATUGENIUM_OUTPUT_DIR"
	EnvEnd4Dir   = "MATUGENIUM_END4_DIR"
)

// Config holds the resolved tool configuration.
type Config struct {
	OutputRoot    string `json:"output_dir"`     // Managed root for generated profiles
	End4Dir       string `json:"end4_dir"`       // End-4 dotfiles root receiving palette copies
	FallbackImage string `json:"fallback_image"` // Image used when an app icon cannot be resolved
}

// ConfigDir returns the directory containing matugenium config files.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "matugenium")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// DefaultOutputRoot is where generated profiles live unless overridden.
func DefaultOutputRoot() string {
	return filepath.Join(ConfigDir(), "generated")
}

// defaultEnd4Dir returns the conventional end-4 root, but only when it
// actually exists; mirroring is otherwise disabled by default.
func defaultEnd4Dir() string {
	home, _ := os.UserHomeDir()
	candidate := filepath.Join(home, ".config", "end-4")
	if _, err := os.Stat(candidate); err != nil {
		return ""
	}
	return candidate
}

// Load reads the config file at path (ConfigPath() when empty), applies
// environment overrides, and fills remaining defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if dir := os.Getenv(EnvOutputDir); dir != "" {
		cfg.OutputRoot = dir
	}
	if dir := os.Getenv(EnvEnd4Dir); dir != "" {
		cfg.End4Dir = dir
	}
	if cfg.OutputRoot == "" {
		cfg.OutputRoot = DefaultOutputRoot()
	}
	if cfg.End4Dir == "" {
		cfg.End4Dir = defaultEnd4Dir()
	}
	return cfg, nil
}

// Save writes the configuration to path (ConfigPath() when empty).
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ProfileDir returns the per-application output directory for a key.
func (c *Config) ProfileDir(key string) string {
	return filepath.Join(c.OutputRoot, key)
}

// MirrorPath returns the end-4 destination for a key's palette, or ""
// when mirroring is disabled.
func (c *Config) MirrorPath(key string) string {
	if c.End4Dir == "" {
		return ""
	}
	return filepath.Join(c.End4Dir, "matugenium", "apps", key, "colors.json")
}

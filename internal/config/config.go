// Package config handles the ~/.backcast directory: a YAML config file
// plus the plans data directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// BackcastDir is the directory created under the user's home.
	BackcastDir    = ".backcast"
	configFilename = "config.yaml"
	plansDirname   = "plans"
)

const defaultConfigYAML = `# backcast configuration
version: 1

# Directory plan files are saved to. Empty means <backcast dir>/plans.
data_dir: ""

# Fan-in above which a step is reported as a bottleneck by advise.
bottleneck_threshold: 2

# Number of phases the template generator seeds a new plan with.
template_phases: 5
`

// Config models config.yaml.
type Config struct {
	Version             int    `yaml:"version"`
	DataDir             string `yaml:"data_dir"`
	BottleneckThreshold int    `yaml:"bottleneck_threshold"`
	TemplatePhases      int    `yaml:"template_phases"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Version:             1,
		BottleneckThreshold: 2,
		TemplatePhases:      5,
	}
}

// Dir returns the backcast directory under the user's home.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, BackcastDir), nil
}

// Load reads config.yaml from dir, falling back to defaults when the
// file does not exist. Unset numeric fields also fall back so a partial
// file stays valid.
func Load(dir string) (Config, error) {
	b, err := os.ReadFile(filepath.Join(dir, configFilename))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.BottleneckThreshold <= 0 {
		cfg.BottleneckThreshold = Default().BottleneckThreshold
	}
	if cfg.TemplatePhases <= 0 {
		cfg.TemplatePhases = Default().TemplatePhases
	}
	return cfg, nil
}

// Ensure creates the backcast directory, a default config.yaml when
// absent, and the plans directory. It returns the loaded config.
func Ensure(dir string) (Config, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Config{}, fmt.Errorf("create backcast directory: %w", err)
	}

	path := filepath.Join(dir, configFilename)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
			return Config{}, fmt.Errorf("write default config: %w", err)
		}
	} else if err != nil {
		return Config{}, fmt.Errorf("stat config: %w", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		return Config{}, err
	}
	if err := os.MkdirAll(cfg.PlansDir(dir), 0o755); err != nil {
		return Config{}, fmt.Errorf("create plans directory: %w", err)
	}
	return cfg, nil
}

// PlansDir resolves the plan data directory, honoring data_dir overrides.
func (c Config) PlansDir(dir string) string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return filepath.Join(dir, plansDirname)
}

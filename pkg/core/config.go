// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override config file values
const (
	EnvPkgConfig   = "BUILDCFG_PKG_CONFIG"
	EnvProfilesDir = "BUILDCFG_PROFILES_DIR"
)

// Config holds buildcfg configuration
type Config struct {
	Library     string        `yaml:"library"`      // Profile to resolve (e.g., "igraph")
	PkgConfig   string        `yaml:"pkg_config"`   // pkg-config executable
	Timeout     time.Duration `yaml:"timeout"`      // Per-probe timeout, 0 waits forever
	Debug       bool          `yaml:"debug"`        // Debug logging
	ProfilesDir string        `yaml:"profiles_dir"` // Directory of <name>/index.toml profiles
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Library:     "igraph",
		PkgConfig:   "pkg-config",
		Timeout:     0,
		Debug:       false,
		ProfilesDir: getDefaultProfilesDir(),
	}
	applyEnv(cfg)
	return cfg
}

// DefaultConfigPath returns $HOME/.config/buildcfg/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "buildcfg", "config.yaml"), nil
}

// LoadConfig loads configuration from file. A missing file yields the
// default configuration; fields absent from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	applyEnv(cfg)

	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("parsing config: negative timeout %s", cfg.Timeout)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvPkgConfig); v != "" {
		cfg.PkgConfig = v
	}
	if v := os.Getenv(EnvProfilesDir); v != "" {
		cfg.ProfilesDir = v
	}
}

func getDefaultProfilesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "buildcfg", "profiles")
}

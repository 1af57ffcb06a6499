package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBPath string       `yaml:"db_path"`
	Sync   SyncConfig   `yaml:"sync"`
	Server ServerConfig `yaml:"server"`
}

type SyncConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Server   string        `yaml:"server"`
	User     string        `yaml:"user"`
	Debounce time.Duration `yaml:"debounce"`
}

type ServerConfig struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	DBPath string `yaml:"db_path"`
}

// DefaultPath returns the default config location (~/.habitquest.yaml).
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".habitquest.yaml"), nil
}

func defaultConfig() *Config {
	return &Config{
		Sync: SyncConfig{
			Server:   "http://localhost:8090",
			User:     "main",
			Debounce: time.Second,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8090,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config at path, falling back to defaults when
// the file does not exist. Any other read or parse error is returned.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

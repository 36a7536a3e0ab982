package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// Default values for analyze
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// DefaultsConfig holds default values for the analyze command
type DefaultsConfig struct {
	Level   string   `mapstructure:"level"`
	Output  string   `mapstructure:"output"`
	Pattern string   `mapstructure:"pattern"`
	Exclude []string `mapstructure:"exclude"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:  "plain",
		Quiet:   false,
		Verbose: false,
	}
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.logtally.yaml or ./logtally.yaml (and .yml)
// 2. ~/.logtally.yaml or ~/.logtally.yml
// 3. $XDG_CONFIG_HOME/logtally/config.yaml (or ~/.config/logtally/config.yaml)
// 4. /etc/logtally/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	configFile := findConfigFile()
	if configFile != "" {
		loaded, err := LoadFromFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".logtally.yaml", ".logtally.yml", "logtally.yaml", "logtally.yml"}

	var searchPaths []string

	if cwd, err := os.Getwd(); err == nil {
		searchPaths = append(searchPaths, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, home)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(configDir, "logtally"))
	}
	searchPaths = append(searchPaths, "/etc/logtally")

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		// Also check for config.yaml in app dirs
		if strings.HasSuffix(dir, "logtally") {
			path := filepath.Join(dir, "config.yaml")
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOGTALLY_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOGTALLY_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("LOGTALLY_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("LOGTALLY_LEVEL"); v != "" {
		cfg.Defaults.Level = v
	}
	if v := os.Getenv("LOGTALLY_OUTPUT"); v != "" {
		cfg.Defaults.Output = v
	}
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}

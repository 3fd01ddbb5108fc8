package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// host settings; command-line flags override anything set here
type Config struct {
	Parallel bool   `yaml:"parallel"`
	Prefix   string `yaml:"prefix"`
	LogFile  string `yaml:"log_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Parallel: true,
	}
}

// Load reads host settings from the YAML file at path. An empty path returns
// the defaults; fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

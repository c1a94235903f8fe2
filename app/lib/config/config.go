package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the startup configuration. It is read once at startup
// and never mutated afterwards, so connection goroutines can share
// it without synchronization.
type Config struct {
	// Addr is the TCP listen address.
	Addr string `yaml:"addr"`
	// Directory backs the /files/ routes. Empty means those routes
	// answer 404 / 500.
	Directory string `yaml:"directory"`
	// MetricsAddr enables a prometheus endpoint when non-empty.
	MetricsAddr string `yaml:"metricsAddr"`
	LogLevel    string `yaml:"logLevel"`
}

func Default() Config {
	return Config{
		Addr:     "127.0.0.1:4221",
		LogLevel: "info",
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// or a missing file yields the defaults; unparsable YAML is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MapServer holds all configuration for the map projection server.
type MapServer struct {
	// Network
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`

	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// DefaultMapServer returns MapServer config with sensible defaults.
func DefaultMapServer() MapServer {
	return MapServer{
		BindAddress: "0.0.0.0",
		Port:        4242,
		LogLevel:    "debug",
	}
}

// LoadMapServer loads map server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadMapServer(path string) (MapServer, error) {
	cfg := DefaultMapServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	// Create parent directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// InitDefault writes the default configuration out for hand editing and
// returns the path written. The --config flag chooses the destination;
// otherwise the file lands in the working directory.
func InitDefault() (string, error) {
	path := ConfigPath()
	if path == "" {
		path = "halfpipe.yaml"
	}
	if err := Default().SaveTo(path); err != nil {
		return "", err
	}
	return path, nil
}

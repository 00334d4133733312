package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults used by the treemaker command. Every field can
// be overridden by the matching command line flag.
type Config struct {
	Mode     string `yaml:"mode"`
	Labels   bool   `yaml:"labels"`
	Root     string `yaml:"root"`
	NFC      bool   `yaml:"nfc"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mode:     "newick",
		Labels:   false,
		Root:     "root",
		NFC:      false,
		LogLevel: "warn",
	}
}

// Load reads a YAML configuration file. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConnectionConfig names a Relay connection field inside one of the
// operation roots. AtObjectPath is root-first, starting at one of the anchor
// strings ("response", "fragment", "variables").
type ConnectionConfig struct {
	AtObjectPath []string `yaml:"atObjectPath"`
	FieldName    string   `yaml:"fieldName"`
}

// PrintConfig carries the per-artifact options recognized by the printer.
type PrintConfig struct {
	// Connection, when set, asks for a getConnectionNodes helper specialized
	// to the named field.
	Connection *ConnectionConfig `yaml:"connection"`
}

// Config represents the complete configuration for artifact generation
type Config struct {
	// ArtifactsDir is the directory the CLI walks for Relay compiler output
	ArtifactsDir string `yaml:"artifactsDir"`
	// OutDir receives the generated ReasonML sources; defaults to the
	// artifact's own directory when empty
	OutDir string `yaml:"outDir"`
	// Suffix selects which artifacts to pick up (defaults to "_graphql.js")
	Suffix string `yaml:"suffix"`
	// Print holds printer options applied to every artifact
	Print PrintConfig `yaml:"print"`
}

// Load loads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.ArtifactsDir == "" {
		return nil, errors.New("config.artifactsDir is required")
	}
	if cfg.Suffix == "" {
		cfg.Suffix = "_graphql.js"
	}
	if cfg.Print.Connection != nil {
		c := cfg.Print.Connection
		if len(c.AtObjectPath) == 0 || c.FieldName == "" {
			return nil, fmt.Errorf("config.print.connection requires both atObjectPath and fieldName")
		}
	}
	if !filepath.IsAbs(cfg.ArtifactsDir) {
		abs, _ := filepath.Abs(cfg.ArtifactsDir)
		cfg.ArtifactsDir = abs
	}
	if cfg.OutDir != "" && !filepath.IsAbs(cfg.OutDir) {
		abs, _ := filepath.Abs(cfg.OutDir)
		cfg.OutDir = abs
	}
	return &cfg, nil
}

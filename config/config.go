package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the invidx tool.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Index   IndexConfig   `yaml:"index"`
	Query   QueryConfig   `yaml:"query"`
	Logging LoggingConfig `yaml:"logging"`
}

// DatasetConfig describes the document source.
type DatasetConfig struct {
	Path     string `yaml:"path"`     // file path or doublestar glob
	Encoding string `yaml:"encoding"` // "utf-8" or "cp1251"
}

// IndexConfig describes the persisted index.
type IndexConfig struct {
	Path    string `yaml:"path"`
	Storage string `yaml:"storage"` // "binary", "json", or "bolt"
}

// QueryConfig holds query evaluation configuration.
type QueryConfig struct {
	MissingTerm string `yaml:"missing_term"` // "strict" or "skip"
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration. The dataset and index
// paths match the defaults of earlier versions of this tool.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:     "wikipedia_sample",
			Encoding: "utf-8",
		},
		Index: IndexConfig{
			Path:    "inverted.index",
			Storage: "binary",
		},
		Query: QueryConfig{
			MissingTerm: "strict",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults if the
// file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for invidx.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "invidx.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Package config handles configuration loading and dataset resolution.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"geoatlas/internal/feature"
)

// Config represents the root configuration file structure.
type Config struct {
	Title       string `yaml:"title,omitempty"`
	Attribution string `yaml:"attribution,omitempty"`

	// DatasetFile points at a YAML or JSON feature list; Features defines
	// the dataset inline. Inline wins when both are set; with neither, the
	// built-in sample dataset is used.
	DatasetFile string            `yaml:"dataset,omitempty"`
	Features    []feature.Feature `yaml:"features,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{Title: "Geographical Features Explorer"}
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Dataset resolves the configured feature dataset.
func (c *Config) Dataset() ([]feature.Feature, error) {
	if len(c.Features) > 0 {
		return c.Features, nil
	}

	if c.DatasetFile != "" {
		return loadDataset(c.DatasetFile)
	}

	return feature.Default(), nil
}

func loadDataset(path string) ([]feature.Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var features []feature.Feature
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &features)
	} else {
		err = yaml.Unmarshal(data, &features)
	}
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	return features, nil
}

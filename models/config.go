// Package models defines data structures shared across the pipeline:
// run configuration and the per-document output record.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default paths used when neither the config file nor the CLI provides them.
const (
	DefaultInputDir    = "input"
	DefaultOutputDir   = "output"
	DefaultWorkerCount = 4
)

// RunConfig holds runtime configuration for an extraction run. Values come
// from the optional YAML config file, overridden by CLI flags and positional
// arguments.
type RunConfig struct {
	InputDir    string `yaml:"input_dir"`
	OutputDir   string `yaml:"output_dir"`
	WorkerCount int    `yaml:"workers"`
}

// LoadConfig reads a YAML run configuration from path. A missing file is not
// an error; it yields the defaults so the tool runs without any setup.
func LoadConfig(path string) (*RunConfig, error) {
	config := &RunConfig{
		InputDir:    DefaultInputDir,
		OutputDir:   DefaultOutputDir,
		WorkerCount: DefaultWorkerCount,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.InputDir == "" {
		config.InputDir = DefaultInputDir
	}
	if config.OutputDir == "" {
		config.OutputDir = DefaultOutputDir
	}
	if config.WorkerCount <= 0 {
		config.WorkerCount = DefaultWorkerCount
	}
	return config, nil
}

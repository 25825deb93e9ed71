// Package project locates and loads a solidify project's manifest,
// directly adapted from venture's project package: a marker file walked
// up from the working directory, parsed with yaml.v3.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "solidify.yaml"

// Config represents the project configuration from solidify.yaml.
type Config struct {
	Name          string `yaml:"name"`
	DefaultOutput string `yaml:"default_output"`
	DefaultScene  string `yaml:"default_scene,omitempty"`
}

// FindProjectRoot walks up from the current working directory looking
// for solidify.yaml. Returns the directory containing it, or an error if
// none is found before reaching the filesystem root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}

	dir := cwd
	for {
		configPath := filepath.Join(dir, configFileName)
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found in any parent directory of %s", configFileName, cwd)
		}
		dir = parent
	}
}

// LoadConfig loads and parses the solidify.yaml file from the given
// project root.
func LoadConfig(projectRoot string) (*Config, error) {
	configPath := filepath.Join(projectRoot, configFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", configFileName, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFileName, err)
	}

	if config.Name == "" {
		return nil, fmt.Errorf("'name' field is required in %s", configFileName)
	}
	if config.DefaultOutput == "" {
		return nil, fmt.Errorf("'default_output' field is required in %s", configFileName)
	}

	return &config, nil
}

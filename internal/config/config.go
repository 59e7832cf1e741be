// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

// Package config handles hidl2aidl tool configuration.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the hidl2aidl.yaml configuration file.
type Config struct {
	Version int `yaml:"version"`
	// Root is the directory holding the legacy schema tree.
	Root string `yaml:"root,omitempty"`
	// Output is the directory generated artifacts are written under.
	Output string `yaml:"output,omitempty"`
	// ReplacedTypes points at a YAML file with additional replaced-type
	// entries.
	ReplacedTypes string `yaml:"replacedTypes,omitempty"`
	// Backends restricts which output backends run by default.
	Backends []string `yaml:"backends,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Root:    ".",
		Output:  "out",
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Root == "" {
		return errors.New("root must not be empty")
	}
	return nil
}

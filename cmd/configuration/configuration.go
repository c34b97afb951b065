// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFileName is the name of the configuration file in the docsite home directory
	DefaultConfigFileName = "config"
	// DocsiteHomeDir is the docsite home directory relative to the user home directory
	DocsiteHomeDir = ".docsite"
	// ConfigEnv overrides the configuration file path
	ConfigEnv = "DOCSITECONFIG"
)

// Loader loads the docsite configuration
type Loader interface {
	Load() (*Config, error)
}

// DefaultConfigurationLoader loads the configuration file from $DOCSITECONFIG
// or from $HOME/.docsite/config
type DefaultConfigurationLoader struct{}

// Load returns an empty configuration when the configuration file does not exist
func (d *DefaultConfigurationLoader) Load() (*Config, error) {
	if configFilePath, found := os.LookupEnv(ConfigEnv); found {
		if configFilePath == "" {
			return nil, fmt.Errorf("the provided environment variable %s is set to empty string", ConfigEnv)
		}
		return load(configFilePath)
	}
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %v", err)
	}
	return load(filepath.Join(userHomeDir, DocsiteHomeDir, DefaultConfigFileName))
}

func load(configFilePath string) (*Config, error) {
	if configFilePath == "" {
		return &Config{}, nil
	}
	stat, err := os.Stat(configFilePath)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %v", configFilePath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the config file path %s is directory, instead of file", configFilePath)
	}
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", configFilePath, err)
	}
	return config, nil
}

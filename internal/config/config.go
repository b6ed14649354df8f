package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultDatasetFile is used when neither the --file flag nor the config
// file names a dataset.
const DefaultDatasetFile = "AtomicCards.json"

// Config represents the application configuration
type Config struct {
	DatasetPath string `toml:"dataset_path"`
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardsieve", "config.toml")
}

// LoadConfig loads the config file. A missing config file is not an error:
// the zero config is returned and the defaults apply.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return &config, nil
}

// GetDatasetPath resolves the dataset path for this invocation: an explicit
// flag value wins, then the config file, then DefaultDatasetFile in the
// working directory.
func GetDatasetPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	if config.DatasetPath != "" {
		return config.DatasetPath, nil
	}

	return DefaultDatasetFile, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/mcpnum"
	projectConfigDir = ".mcpnum"
	configFileName   = "config.yaml"
)

// LoadConfig loads the mcpnum configuration by layering default, user,
// project and environment settings.
func LoadConfig() (Config, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. Determine user-specific configuration path
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// Log this error but don't fail; user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	// 3. Determine project-specific configuration path
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	// 4. Environment variables override file settings
	config = applyEnvOverrides(config)

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero-valued
// overlay fields leave the base value in place.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Server.Host != "" {
		merged.Server.Host = overlay.Server.Host
	}
	if overlay.Server.Port != 0 {
		merged.Server.Port = overlay.Server.Port
	}
	if overlay.Server.Transport != "" {
		merged.Server.Transport = overlay.Server.Transport
	}
	if overlay.Server.LogLevel != "" {
		merged.Server.LogLevel = overlay.Server.LogLevel
	}

	return merged
}

// applyEnvOverrides applies MCPNUM_* environment variables on top of the
// file-based configuration. A .env file in the working directory is loaded
// first if present; already-set variables win over .env entries.
func applyEnvOverrides(config Config) Config {
	_ = godotenv.Load()

	if v := os.Getenv("MCPNUM_HOST"); v != "" {
		config.Server.Host = v
	}
	if v := os.Getenv("MCPNUM_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			fmt.Fprintf(os.Stderr, "Warning: Ignoring invalid MCPNUM_PORT %q\n", v)
		} else {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("MCPNUM_TRANSPORT"); v != "" {
		config.Server.Transport = v
	}
	if v := os.Getenv("MCPNUM_LOG_LEVEL"); v != "" {
		config.Server.LogLevel = v
	}

	return config
}

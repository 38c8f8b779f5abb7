// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads connprompt's settings from defaults, the config file,
// CONNPROMPT_* environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName    = "connprompt"
	envPrefix  = "connprompt"
	configName = "connprompt"
)

type Database struct {
	Type string `mapstructure:"type" yaml:"type"`
	Dsn  string `mapstructure:"dsn" yaml:"dsn"`
}

type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file,omitempty"`
}

type Config struct {
	Database                Database `mapstructure:"database" yaml:"database"`
	Language                string   `mapstructure:"language" yaml:"language"`
	Format                  string   `mapstructure:"format" yaml:"format"`
	AllowSavePassword       bool     `mapstructure:"allow_save_password" yaml:"allow_save_password"`
	AllowSaveTunnelPassword bool     `mapstructure:"allow_save_tunnel_password" yaml:"allow_save_tunnel_password"`
	Log                     Log      `mapstructure:"log" yaml:"log"`
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	dsn := "connprompt.db"
	if dir, err := os.UserConfigDir(); err == nil {
		dsn = filepath.Join(dir, appName, "connprompt.db")
	}
	return map[string]any{
		"database.type":              "sqlite",
		"database.dsn":               dsn,
		"language":                   "en",
		"format":                     "form",
		"allow_save_password":        true,
		"allow_save_tunnel_password": true,
		"log.level":                  "warn",
		"log.file":                   "",
	}
}

// FlagKeys maps command line flag names to the config key they override.
// Flags not listed bind to the key of the same name.
var FlagKeys = map[string]string{
	"db-type":   "database.type",
	"db-dsn":    "database.dsn",
	"lang":      "language",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), appName)
		default: // Linux, macOS, etc.
			configDir = filepath.Join("/etc", appName)
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, configName+".yaml"), nil
}

// GetConfigPath returns the path WriteConfigFile writes to.
func GetConfigPath(system bool) (string, error) {
	return getConfigPath(system)
}

func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	// 1. defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. config file, an explicit --config wins over the search paths
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("reading config: %w", err)
		}
	}

	// 3. environment
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. flags
	if cmd != nil {
		var bindErr error
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key, ok := FlagKeys[f.Name]
			if !ok {
				key = f.Name
			}
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return c, bindErr
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := getConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", err
	}
	return path, nil
}

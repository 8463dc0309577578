// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper. The
// configuration is loaded once at process start and passed by value into the
// components that need it; nothing reads ambient global state.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for config paths and env vars.
	AppName = "vaultstock"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// DefaultInventoryFolder is the vault subfolder used when the config
	// leaves inventory_folder empty.
	DefaultInventoryFolder = "inventory"
	// EnvPrefix is the prefix for environment variable overrides
	// (e.g. VAULTSTOCK_VAULT_PATH).
	EnvPrefix = "VAULTSTOCK"
)

// ErrNoVaultPath indicates the configuration does not name a vault root.
var ErrNoVaultPath = errors.New("vault_path is not configured")

// Config is the full application configuration.
type Config struct {
	// VaultPath is the root of the user's note vault. Required for every
	// command that touches the inventory.
	VaultPath string `mapstructure:"vault_path" toml:"vault_path"`
	// InventoryFolder is the vault subfolder holding item files. Empty
	// means DefaultInventoryFolder.
	InventoryFolder string `mapstructure:"inventory_folder" toml:"inventory_folder"`
	// UI holds presentation settings.
	UI UIConfig `mapstructure:"ui" toml:"ui"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Verbose enables debug-level logging.
	Verbose bool `mapstructure:"verbose" toml:"verbose"`
	// Plain disables styled output even on a terminal.
	Plain bool `mapstructure:"plain" toml:"plain"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		InventoryFolder: DefaultInventoryFolder,
	}
}

// ConfigDir returns the vaultstock configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// LoadOptions controls where Load looks for the config file. Zero values
// mean the platform defaults.
type LoadOptions struct {
	// ConfigFilePath uses this exact file, exclusively, when set.
	ConfigFilePath string
	// ConfigDirPath overrides the platform config directory when set.
	ConfigDirPath string
}

// Load reads the configuration from defaults, the config file (if present),
// and VAULTSTOCK_* environment variables, in increasing precedence. A
// missing config file is not an error; defaults and env vars still apply.
// It returns the config and the path of the file actually read, if any.
func Load(opts LoadOptions) (Config, string, error) {
	v := viper.New()
	v.SetConfigType(ConfigFileExt)

	defaults := DefaultConfig()
	v.SetDefault("vault_path", defaults.VaultPath)
	v.SetDefault("inventory_folder", defaults.InventoryFolder)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.plain", defaults.UI.Plain)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for _, key := range []string{"vault_path", "inventory_folder"} {
		// AutomaticEnv alone does not surface keys absent from the config
		// file, so bind the ones callers rely on explicitly.
		if err := v.BindEnv(key); err != nil {
			return Config{}, "", fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	resolvedPath := ""
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return Config{}, "", fmt.Errorf("config file not found: %s", opts.ConfigFilePath)
		}
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, "", fmt.Errorf("reading config file %s: %w", opts.ConfigFilePath, err)
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		cfgDir := opts.ConfigDirPath
		if cfgDir == "" {
			dir, err := ConfigDir()
			if err != nil {
				return Config{}, "", err
			}
			cfgDir = dir
		}
		cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
		if fileExists(cfgPath) {
			v.SetConfigFile(cfgPath)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, "", fmt.Errorf("reading config file %s: %w", cfgPath, err)
			}
			resolvedPath = cfgPath
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, resolvedPath, nil
}

// Validate checks that the config can back a Store.
func (c Config) Validate() error {
	if c.VaultPath == "" {
		return ErrNoVaultPath
	}
	return nil
}

// Save writes the configuration as TOML to the given directory, creating the
// directory if needed. An empty dir means the platform config directory.
func Save(cfg Config, dir string) (string, error) {
	if dir == "" {
		d, err := ConfigDir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}

	cfgPath := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(cfgPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return cfgPath, nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

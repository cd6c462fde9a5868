// Package config holds runtime settings for the otpvault CLI and their
// layering: built-in defaults, then an optional YAML config file, then
// OTPVAULT_* environment variables. Command-line flags override all of it
// at the CLI layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultDirName is the dot-directory under the user's home that holds
// the vault file and, optionally, config.yaml.
const DefaultDirName = ".otpvault"

// Config holds the settings every command needs.
type Config struct {
	// VaultPath is the encrypted vault file location.
	VaultPath string

	// KeyringService is the OS keychain service name master keys are
	// filed under.
	KeyringService string

	// Color enables colored terminal output.
	Color bool
}

// LoadDefaults populates c with sensible defaults rooted in the user's
// home directory.
func (c *Config) LoadDefaults() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	c.VaultPath = filepath.Join(home, DefaultDirName, "vault.otpv")
	c.KeyringService = "otpvault"
	c.Color = true
	return nil
}

// Load constructs a Config: defaults first, then the config file (an
// explicit path, or config.yaml found in ~/.otpvault or the working
// directory), then environment variables. A missing config file is fine;
// a broken one is not.
func Load(cfgFile string) (*Config, error) {
	cfg := &Config{}
	if err := cfg.LoadDefaults(); err != nil {
		return nil, err
	}

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, DefaultDirName))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("otpvault")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing discovered config is fine; an explicit one must exist.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if s := v.GetString("vault_path"); s != "" {
		cfg.VaultPath = s
	}
	if s := v.GetString("keyring_service"); s != "" {
		cfg.KeyringService = s
	}
	if v.IsSet("color") {
		cfg.Color = v.GetBool("color")
	}
	return cfg, nil
}

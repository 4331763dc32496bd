// Package config loads slack-purge settings from defaults, a YAML file,
// and SLACK_PURGE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix is prepended to every config key when read from the environment.
	EnvPrefix = "SLACK_PURGE"

	configName = "slack-purge.yaml"
)

// Config holds application configuration loaded from YAML.
type Config struct {
	TokenPath    string        `yaml:"token_path" mapstructure:"token_path"`
	APIURL       string        `yaml:"api_url" mapstructure:"api_url"`
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	Timezone     string        `yaml:"timezone" mapstructure:"timezone"`
	ChannelTypes []string      `yaml:"channel_types" mapstructure:"channel_types"`

	configFile string
}

// DefaultConfigPath returns ~/.config/slack-purge/slack-purge.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	path, err := filepath.Abs(filepath.Join(home, ".config", "slack-purge", configName))
	if err != nil {
		return filepath.Join(home, ".config", "slack-purge", configName)
	}
	return path
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("token_path", "~/.slack-token")
	v.SetDefault("api_url", "https://slack.com/api/")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("timezone", "Local")
	v.SetDefault("channel_types", []string{"public_channel", "private_channel"})
}

// Load builds a Config. An explicit path must exist; with an empty path the
// default location is used when present. Environment variables override
// file values, and a .env file in the working directory is read first.
func Load(path string) (*Config, error) {
	// Missing .env is the common case.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	used := ""
	switch {
	case path != "":
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		used = path
	default:
		if _, err := os.Stat(DefaultConfigPath()); err == nil {
			used = DefaultConfigPath()
		}
	}

	if used != "" {
		v.SetConfigFile(used)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", used, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.configFile = used
	return &cfg, nil
}

// ConfigFile returns the path of the file the config was read from, or ""
// when only defaults and environment were used.
func (c *Config) ConfigFile() string {
	return c.configFile
}

// Save writes the config as YAML, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Validate checks that the timezone, timeout and API URL are usable.
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("invalid api_url: %w", err)
	}
	if !u.IsAbs() {
		return fmt.Errorf("invalid api_url %q: must be absolute", c.APIURL)
	}
	return nil
}

// Location returns the configured timezone, falling back to time.Local.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

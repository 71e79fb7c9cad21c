// Package config loads the hwinfo CLI configuration from defaults, an
// optional YAML file, and HWINFO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/slashdevops/hwinfo"
)

// EnvPrefix is the prefix of environment variables overriding file values.
const EnvPrefix = "HWINFO"

// MinCommandTimeout is the shortest command_timeout accepted. A bare number
// such as "5" decodes as nanoseconds and would kill every command.
const MinCommandTimeout = 100 * time.Millisecond

// Config holds the resolved CLI configuration.
type Config struct {
	Lang           string        `mapstructure:"lang"`
	Border         string        `mapstructure:"border"`
	CommandTimeout time.Duration `mapstructure:"command_timeout"`
	LogLevel       string        `mapstructure:"log_level"`
	Diagnostics    bool          `mapstructure:"diagnostics"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Lang:           "fr",
		Border:         hwinfo.DefaultBorder,
		CommandTimeout: 5 * time.Second,
		LogLevel:       "error",
	}
}

// Load reads the configuration. An explicit path must exist; without one,
// config.yaml is looked up in the user config directory and may be absent.
// Values are not validated; call [Config.Validate] once flags are applied.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Defaults()
	v.SetDefault("lang", def.Lang)
	v.SetDefault("border", def.Border)
	v.SetDefault("command_timeout", def.CommandTimeout)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("diagnostics", def.Diagnostics)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "hwinfo"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that every value is one the CLI understands.
func (c *Config) Validate() error {
	if _, err := hwinfo.CatalogFor(c.Lang); err != nil {
		return fmt.Errorf("invalid lang: %w", err)
	}

	if _, err := hwinfo.ParseBorder(c.Border); err != nil {
		return fmt.Errorf("invalid border: %w", err)
	}

	if c.CommandTimeout < MinCommandTimeout {
		return fmt.Errorf("invalid command_timeout %s: must be at least %s", c.CommandTimeout, MinCommandTimeout)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelError
	}

	return level
}

// ParseLevel parses a log level name such as "debug" or "warn".
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", name, err)
	}

	return level, nil
}

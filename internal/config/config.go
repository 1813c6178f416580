// Package config loads CLI settings from defaults, an optional YAML file,
// PATHFLAT_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. PATHFLAT_LOG_LEVEL.
const EnvPrefix = "PATHFLAT"

// Config holds the resolved CLI settings. Empty ResourceState and Params
// leave the names from the shape file in place.
type Config struct {
	LogLevel      string `mapstructure:"log_level"      validate:"required,oneof=debug info warn error"`
	LogFormat     string `mapstructure:"log_format"     validate:"required,oneof=console json"`
	CacheSize     int    `mapstructure:"cache_size"     validate:"min=1"`
	ResourceState string `mapstructure:"resource_state"`
	Params        string `mapstructure:"params"`
	JSONNames     bool   `mapstructure:"json_names"`
	Omitempty     bool   `mapstructure:"omitempty_optional"`
}

// Flags registers the command-line flags that override configuration.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.String("log-format", "", "log format: console or json")
	fs.Int("cache-size", 0, "number of flattened maps kept in memory")
	fs.String("resource-state", "", "resource state type, overrides the shape file")
	fs.String("params", "", "params type, overrides the shape file")
	fs.Bool("json-names", true, "name Go struct fields after their json tag")
	fs.Bool("omitempty-optional", true, "treat json omitempty leaves as optional")
}

// Load resolves the configuration. fs may be nil when no flags are parsed.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("cache_size", 128)
	v.SetDefault("resource_state", "")
	v.SetDefault("params", "")
	v.SetDefault("json_names", true)
	v.SetDefault("omitempty_optional", true)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if fs != nil {
		for key, flag := range map[string]string{
			"log_level":          "log-level",
			"log_format":         "log-format",
			"cache_size":         "cache-size",
			"resource_state":     "resource-state",
			"params":             "params",
			"json_names":         "json-names",
			"omitempty_optional": "omitempty-optional",
		} {
			if f := fs.Lookup(flag); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	configFile := v.GetString("config")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			configFile = f.Value.String()
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("pathflat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Package config loads almanac settings from .almanac.yaml and ALMANAC_* env vars.
package config

import (
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the decoded settings tree.
type Config struct {
	Log Log `mapstructure:"log"`
	UI  UI  `mapstructure:"ui"`
}

// Log controls the rotating log file. An empty Path disables logging.
type Log struct {
	Path       string `mapstructure:"path"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// UI tunes the terminal interface.
type UI struct {
	AltScreen   bool `mapstructure:"alt_screen"`
	WeekNumbers bool `mapstructure:"week_numbers"`
}

var envKeyReplacer = strings.NewReplacer(".", "_")

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Log: Log{Level: "info", MaxSizeMB: 10, MaxBackups: 3},
		UI:  UI{AltScreen: true},
	}
}

// Load reads .almanac.yaml from $ALMANAC_CONFIG_PATH, the working directory
// or $HOME, then applies ALMANAC_* overrides (ALMANAC_LOG_PATH etc). A missing
// file is not an error.
func Load() (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("log.path", def.Log.Path)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", def.Log.MaxBackups)
	v.SetDefault("ui.alt_screen", def.UI.AltScreen)
	v.SetDefault("ui.week_numbers", def.UI.WeekNumbers)

	v.SetConfigName(".almanac") // .yaml is implicit
	v.SetEnvPrefix("ALMANAC")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if override := os.Getenv("ALMANAC_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, errors.Wrap(err, "error reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}

	if cfg.Log.Path != "" {
		path, err := homedir.Expand(cfg.Log.Path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "expand log path %q", cfg.Log.Path)
		}
		cfg.Log.Path = path
	}
	return cfg, nil
}

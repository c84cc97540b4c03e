// Package config loads duotone settings from defaults, a YAML config file,
// DUOTONE_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jmylchreest/duotone/internal/colour"
	"github.com/jmylchreest/duotone/internal/palette"
	"github.com/jmylchreest/duotone/internal/seed"
)

// EnvPrefix is the prefix for environment overrides, e.g. DUOTONE_LEVEL.
const EnvPrefix = "DUOTONE"

// Configuration keys. Flags bound with BindPFlag use the same names.
const (
	KeyLightBackground = "light_background"
	KeyDarkBackground  = "dark_background"
	KeyLevel           = "level"
	KeyPrefix          = "prefix"
	KeyStrategy        = "strategy"
	KeySeedMode        = "seed_mode"
	KeySeed            = "seed"
)

// Config is the validated configuration.
type Config struct {
	LightBackground string
	DarkBackground  string
	Level           colour.Level
	TokenPrefix     string
	Strategy        palette.Strategy
	Seed            seed.Config
}

// PaletteOptions returns generation options for the configured settings.
func (c Config) PaletteOptions() palette.Options {
	return palette.Options{
		LightBackground: c.LightBackground,
		DarkBackground:  c.DarkBackground,
		Level:           c.Level,
		TokenPrefix:     c.TokenPrefix,
		Strategy:        c.Strategy,
	}
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLightBackground, palette.DefaultLightBackground)
	v.SetDefault(KeyDarkBackground, palette.DefaultDarkBackground)
	v.SetDefault(KeyLevel, palette.DefaultLevel.String())
	v.SetDefault(KeyPrefix, palette.DefaultTokenPrefix)
	v.SetDefault(KeyStrategy, string(palette.StrategyClustered))
	v.SetDefault(KeySeedMode, string(seed.ModeRandom))
}

// DefaultDir returns $XDG_CONFIG_HOME/duotone, falling back to the
// platform user config directory.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "duotone"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "duotone"), nil
}

// New returns a viper instance with defaults, environment overrides and the
// config file applied. An explicit configFile must exist; the default
// config.yaml is optional.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// Load validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	var err error

	if cfg.LightBackground, err = colour.NormaliseHex(v.GetString(KeyLightBackground)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyLightBackground, err)
	}
	if cfg.DarkBackground, err = colour.NormaliseHex(v.GetString(KeyDarkBackground)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyDarkBackground, err)
	}
	if cfg.Level, err = colour.ParseLevel(v.GetString(KeyLevel)); err != nil {
		return Config{}, err
	}
	if cfg.Strategy, err = palette.ParseStrategy(v.GetString(KeyStrategy)); err != nil {
		return Config{}, err
	}
	cfg.TokenPrefix = v.GetString(KeyPrefix)

	if cfg.Seed.Mode, err = seed.ParseMode(v.GetString(KeySeedMode)); err != nil {
		return Config{}, err
	}
	if v.IsSet(KeySeed) {
		value := v.GetInt64(KeySeed)
		cfg.Seed.Value = &value
		// A seed on its own implies manual mode.
		if cfg.Seed.Mode == seed.ModeRandom {
			cfg.Seed.Mode = seed.ModeManual
		}
	}

	return cfg, nil
}

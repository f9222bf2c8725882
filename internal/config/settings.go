package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/tmajors/runr/internal/paths"
)

// Settings are the tool-level knobs, distinct from the persisted
// command document: where that document lives and which policies apply
// when working with it. They come from an optional settings.yaml in the
// runr config directory, overridable via RUNR_* environment variables.
type Settings struct {
	// ConfigPath overrides the default command document location.
	ConfigPath string `mapstructure:"config_path"`

	// StrictContexts refuses set-default on unregistered contexts
	// instead of lazily creating them.
	StrictContexts bool `mapstructure:"strict_contexts"`

	// SeedDefaults controls whether a missing document loads as the
	// seeded registry or an empty one.
	SeedDefaults bool `mapstructure:"seed_defaults"`
}

// InitSettings initializes viper with runr's defaults and search paths.
// Call once at startup before LoadSettings.
func InitSettings() {
	viper.SetConfigName(paths.SettingsFileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("RUNR")
	viper.AutomaticEnv()

	viper.SetDefault("config_path", "")
	viper.SetDefault("strict_contexts", false)
	viper.SetDefault("seed_defaults", true)
}

// LoadSettings reads the settings file if one exists and returns the
// effective settings. A missing file is fine; defaults apply.
func LoadSettings() (*Settings, error) {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading settings file")
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}
	return &s, nil
}

// LoadOptions translates settings into the corresponding Load options.
func (s *Settings) LoadOptions() []LoadOption {
	var opts []LoadOption
	if s.StrictContexts {
		opts = append(opts, WithStrictContexts())
	}
	if !s.SeedDefaults {
		opts = append(opts, WithoutSeedDefaults())
	}
	return opts
}

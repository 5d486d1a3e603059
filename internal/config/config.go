// Package config resolves ecofocus settings from the config file, the
// command line and the first-run prompt
package config

import (
	"fmt"
	"io"
	"os"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Work          SessionConfig      `mapstructure:"work"`
		Break         SessionConfig      `mapstructure:"break"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Sound         SoundConfig        `mapstructure:"sound"`
		CLI           CLIConfig          `mapstructure:"-"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
	}

	// SessionConfig holds the settings of a timer mode.
	SessionConfig struct {
		// Duration in minutes, used until a duration is set in the widget
		Duration int `mapstructure:"duration"`
	}

	// SettingsConfig holds general settings.
	SettingsConfig struct {
		Cmd              string `mapstructure:"cmd"`
		Storage          string `mapstructure:"storage"`
		SoundsDir        string `mapstructure:"sounds_dir"`
		ArcadeHoldFrames int    `mapstructure:"arcade_hold_frames"`
		AutoBreak        bool   `mapstructure:"auto_break"`
		Location         bool   `mapstructure:"location"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		TwentyFourHour bool `mapstructure:"24hr_clock"`
		NoColor        bool `mapstructure:"-"`
	}

	// SoundConfig holds ambient sound settings.
	SoundConfig struct {
		DefaultVolume float64 `mapstructure:"default_volume"`
	}

	// CLIConfig holds values that only come from command-line flags.
	CLIConfig struct {
		Sounds []string
		// Work and Break are zero unless set on the command line
		Work  int
		Break int
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies options in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}

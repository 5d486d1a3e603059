package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyWorkDuration         = "work.duration"
	keyBreakDuration        = "break.duration"
	keyAutoBreak            = "settings.auto_break"
	keySessionCmd           = "settings.cmd"
	keyStorage              = "settings.storage"
	keySoundsDir            = "settings.sounds_dir"
	keyArcadeHoldFrames     = "settings.arcade_hold_frames"
	keyLocation             = "settings.location"
	keyNotificationsEnabled = "notifications.enabled"
	keyTwentyFourHour       = "display.24hr_clock"
	keyDefaultVolume        = "sound.default_volume"
)

// Defaults.
const (
	DefaultWorkDuration  = 25
	DefaultBreakDuration = 5
	DefaultStorage       = "bolt"
	DefaultVolume        = 0.5
	// terminals report key repeats but not releases, so a held arrow key
	// is assumed released after this many frames without a repeat
	DefaultHoldFrames = 8
)

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	return v
}

// WithViperConfig returns an Option that loads configuration from Viper. A
// config file with the defaults (and any prompt answers) is written if none
// exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := newViper(configPath)

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyWorkDuration, DefaultWorkDuration)
	v.SetDefault(keyBreakDuration, DefaultBreakDuration)
	v.SetDefault(keyAutoBreak, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyStorage, DefaultStorage)
	v.SetDefault(keySoundsDir, "")
	v.SetDefault(keyArcadeHoldFrames, DefaultHoldFrames)
	v.SetDefault(keyLocation, false)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyTwentyFourHour, true)
	v.SetDefault(keyDefaultVolume, DefaultVolume)

	// answers from the first-run prompt
	if c.Work.Duration != 0 {
		v.SetDefault(keyWorkDuration, c.Work.Duration)
	}

	if c.Break.Duration != 0 {
		v.SetDefault(keyBreakDuration, c.Break.Duration)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	return v.Unmarshal(c)
}

// Watch reloads the config file whenever it changes on disk and passes the
// new settings to fn. Invalid edits are logged and skipped.
func Watch(configPath string, fn func(*Config)) error {
	v := newViper(configPath)

	setupViper(v, &Config{})

	if err := v.ReadInConfig(); err != nil {
		return errReadConfig.Wrap(err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		c := &Config{}

		if err := loadViperConfig(v, c); err != nil {
			slog.Warn("unable to reload config", slog.Any("error", err))
			return
		}

		if err := c.Validate(); err != nil {
			slog.Warn("ignoring invalid config change", slog.Any("error", err))
			return
		}

		slog.Info("config reloaded", slog.String("path", e.Name))

		fn(c)
	})

	v.WatchConfig()

	return nil
}

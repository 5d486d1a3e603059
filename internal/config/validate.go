package config

import (
	"github.com/ayoisaiah/ecofocus/internal/audio"
)

const (
	minWorkDuration  = 5
	minBreakDuration = 1
	maxDuration      = 720 // 12 hours
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateDuration("work", c.Work.Duration, minWorkDuration); err != nil {
		return err
	}

	if err := validateDuration("break", c.Break.Duration, minBreakDuration); err != nil {
		return err
	}

	// command line durations go through the timer setters, which clamp
	// short values up to the minimum
	if c.CLI.Work > maxDuration {
		return errInvalidDuration.Fmt("work", minWorkDuration, maxDuration, c.CLI.Work)
	}

	if c.CLI.Break > maxDuration {
		return errInvalidDuration.Fmt("break", minBreakDuration, maxDuration, c.CLI.Break)
	}

	return c.validateSettings()
}

func validateDuration(name string, minutes, minimum int) error {
	if minutes < minimum || minutes > maxDuration {
		return errInvalidDuration.Fmt(name, minimum, maxDuration, minutes)
	}

	return nil
}

// validateSettings validates the settings and sound sections.
func (c *Config) validateSettings() error {
	switch c.Settings.Storage {
	case "bolt", "sqlite":
	default:
		return errUnknownStorage.Fmt(c.Settings.Storage)
	}

	if c.Settings.ArcadeHoldFrames < 1 {
		return errInvalidHoldFrames.Fmt(c.Settings.ArcadeHoldFrames)
	}

	if c.Sound.DefaultVolume < 0 || c.Sound.DefaultVolume > 1 {
		return errInvalidVolume.Fmt(c.Sound.DefaultVolume)
	}

	for _, s := range c.CLI.Sounds {
		if !audio.Known(s) {
			return errUnknownAmbientSound.Fmt(s)
		}
	}

	return nil
}

package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Sounds        string
	SessionCmd    string
	Work          int
	Break         int
	DisableNotify bool
	NoColor       bool
	Location      bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Work:          ctx.Int("work"),
			Break:         ctx.Int("break"),
			Sounds:        ctx.String("sound"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoColor:       ctx.Bool("no-color"),
			Location:      ctx.Bool("location"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	c.CLI.Work = opts.Work
	c.CLI.Break = opts.Break

	if opts.Sounds != "" {
		c.CLI.Sounds = splitAndTrim(opts.Sounds)
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.NoColor {
		c.Display.NoColor = true
	}

	if opts.Location {
		c.Settings.Location = true
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}
}

// splitAndTrim splits a comma-separated list and trims whitespace. Empty
// items are dropped.
func splitAndTrim(list string) []string {
	split := strings.Split(list, ",")

	trimmed := make([]string, 0, len(split))

	for _, item := range split {
		if item = strings.TrimSpace(item); item != "" {
			trimmed = append(trimmed, strings.ToLower(item))
		}
	}

	return trimmed
}

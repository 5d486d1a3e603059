// Package app defines the ecofocus command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/ecofocus/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the ecofocus app instance.
func Get() *cli.App {
	ecofocusApp := &cli.App{
		Name: "ecofocus",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		ecofocus is a calm productivity widget for the terminal. It pairs a
		focus/break timer with ambient nature sounds, a breathing guide, a
		break-time arcade game, sticky notes and session statistics.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name: "stats",
				Usage: `
				Summarise your focus sessions: totals, streaks and the hours you
				focus best. Defaults to all recorded history`,
				Flags: []cli.Flag{
					sinceFlag,
					jsonFlag,
					listFlag,
				},
				Action: statsAction,
			},
			{
				Name:   "export",
				Usage:  "Export the session history as JSON",
				Flags:  []cli.Flag{outputFlag},
				Action: exportAction,
			},
			{
				Name:      "import",
				Usage:     "Import data exported from the browser edition of the widget",
				ArgsUsage: "<file>",
				Action:    importAction,
			},
			{
				Name:   "reset-stats",
				Usage:  "Clear the session history. The lifetime session count is kept",
				Flags:  []cli.Flag{yesFlag},
				Action: resetStatsAction,
			},
			{
				Name:  "notes",
				Usage: "Manage sticky notes",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List all notes",
						Flags:  []cli.Flag{jsonFlag},
						Action: notesListAction,
					},
					{
						Name:      "add",
						Usage:     "Add a note",
						ArgsUsage: "<text>",
						Flags:     []cli.Flag{colorFlag},
						Action:    notesAddAction,
					},
					{
						Name:      "edit",
						Usage:     "Replace the text of a note",
						ArgsUsage: "<id> <text>",
						Action:    notesEditAction,
					},
					{
						Name:      "move",
						Usage:     "Move a note",
						ArgsUsage: "<id> <x> <y>",
						Action:    notesMoveAction,
					},
					{
						Name:      "rm",
						Usage:     "Delete a note",
						ArgsUsage: "<id>",
						Action:    notesDeleteAction,
					},
				},
			},
			{
				Name:      "theme",
				Usage:     "Show or set the theme",
				ArgsUsage: "[light|dark|toggle]",
				Action:    themeAction,
			},
		},
		Flags: []cli.Flag{
			workFlag,
			breakFlag,
			soundFlag,
			disableNotificationFlag,
			noColorFlag,
			locationFlag,
			sessionCmdFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return ecofocusApp
}

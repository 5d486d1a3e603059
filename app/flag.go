package app

import "github.com/urfave/cli/v2"

var (
	workFlag = &cli.IntFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Focus duration in minutes (default: 25)",
	}

	breakFlag = &cli.IntFlag{
		Name:    "break",
		Aliases: []string{"b"},
		Usage:   "Break duration in minutes (default: 5)",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Ambient sounds to start with, comma separated. Options: forest, rain, birds, water, brown",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	locationFlag = &cli.BoolFlag{
		Name:  "location",
		Usage: "Show your approximate location, looked up from your IP address",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each focus session",
	}

	sinceFlag = &cli.StringFlag{
		Name:    "since",
		Aliases: []string{"s"},
		Usage:   "Only report sessions since this date. Accepts periods (today, yesterday, 7days, 14days, 30days, 90days) or natural dates ('last monday')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the result as JSON",
	}

	listFlag = &cli.BoolFlag{
		Name:  "list",
		Usage: "List the individual sessions",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write to this file instead of standard output",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	colorFlag = &cli.StringFlag{
		Name:  "color",
		Usage: "Note colour as a hex value",
	}
)

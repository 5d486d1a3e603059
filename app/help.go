package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	author := fmt.Sprintf(
		"{{if len .Authors}}%s\n\t\t{{range .Authors}}{{ . }}{{end}}{{end}}\n\n",
		pterm.Yellow("AUTHOR"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	keys := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("KEYS"),
		keysHelp(),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	website := fmt.Sprintf(
		"%s\n\t\thttps://github.com/ayoisaiah/ecofocus\n",
		pterm.Yellow("WEBSITE"),
	)

	return description + usage + author + version + commands + options + keys + env + website
}

func keysHelp() string {
	return `
p: start or pause the timer            r: reset the timer
m: switch between focus and break      +/-: change the duration
1-4 or tab: switch panels              t: toggle the theme
n: write a sticky note                 s: fade out all sounds
q: quit

The arcade and breathing panels unlock during breaks. In the arcade, steer
with the arrow keys and fire with space.`
}

func envHelp() string {
	return `
ECOFOCUS_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

ECOFOCUS_ENV: keeps the config, database and logs of a run apart from the regular ones (e.g. ECOFOCUS_ENV=test).

ECOFOCUS_DEBUG: set to any value to log at debug level, including every message handled by the widget.`
}

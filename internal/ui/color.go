package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variant of each colour.
var DarkTheme bool

type colorPair struct {
	light, dark func(a ...any) string
}

func (c colorPair) render(a any) string {
	if DarkTheme {
		return c.dark(a)
	}

	return c.light(a)
}

var (
	green     = colorPair{pterm.Green, pterm.LightGreen}
	blue      = colorPair{pterm.Blue, pterm.LightBlue}
	magenta   = colorPair{pterm.Magenta, pterm.LightMagenta}
	highlight = colorPair{pterm.Black, pterm.LightWhite}
)

// Green colours report values.
func Green(a any) string { return green.render(a) }

// Blue colours section headers.
func Blue(a any) string { return blue.render(a) }

// Magenta marks the standout value of a report, such as the busiest hour.
func Magenta(a any) string { return magenta.render(a) }

// Highlight renders user content (note text) in the strongest foreground.
func Highlight(a any) string { return highlight.render(a) }

package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the dashboard.
type Styles struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Work      lipgloss.Style
	Break     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	LockedTab lipgloss.Style
	Panel     lipgloss.Style
	Sidebar   lipgloss.Style
	Selected  lipgloss.Style
}

type palette struct {
	fg, muted, accent, work, brk, border lipgloss.Color
}

var (
	lightPalette = palette{
		fg:     lipgloss.Color("#1f2937"),
		muted:  lipgloss.Color("#6b7280"),
		accent: lipgloss.Color("#2e7d32"),
		work:   lipgloss.Color("#c62828"),
		brk:    lipgloss.Color("#1565c0"),
		border: lipgloss.Color("#a5d6a7"),
	}

	darkPalette = palette{
		fg:     lipgloss.Color("#e5e7eb"),
		muted:  lipgloss.Color("#9ca3af"),
		accent: lipgloss.Color("#81c784"),
		work:   lipgloss.Color("#ef9a9a"),
		brk:    lipgloss.Color("#90caf9"),
		border: lipgloss.Color("#388e3c"),
	}
)

// NewStyles returns the styles of the light or dark theme. With noColor set
// only text attributes are kept.
func NewStyles(dark, noColor bool) Styles {
	if noColor {
		return plainStyles()
	}

	p := lightPalette
	if dark {
		p = darkPalette
	}

	return Styles{
		Base:      lipgloss.NewStyle().Padding(1, 2).Foreground(p.fg),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Secondary: lipgloss.NewStyle().Foreground(p.fg),
		Hint:      lipgloss.NewStyle().Foreground(p.muted),
		Work: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			MarginRight(1).
			Foreground(lipgloss.Color("#ffffff")).
			Background(p.work),
		Break: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			MarginRight(1).
			Foreground(lipgloss.Color("#ffffff")).
			Background(p.brk),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(p.fg),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(p.accent),
		LockedTab: lipgloss.NewStyle().Padding(0, 1).Foreground(p.muted).Strikethrough(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.border).
			PaddingLeft(2).
			MarginLeft(2),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
	}
}

func plainStyles() Styles {
	plain := lipgloss.NewStyle()

	return Styles{
		Base:      plain.Padding(1, 2),
		Main:      plain.Bold(true),
		Secondary: plain,
		Hint:      plain,
		Work:      plain.Bold(true).MarginRight(1),
		Break:     plain.Bold(true).MarginRight(1),
		Tab:       plain.Padding(0, 1),
		ActiveTab: plain.Padding(0, 1).Bold(true).Underline(true),
		LockedTab: plain.Padding(0, 1).Strikethrough(true),
		Panel:     plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		Sidebar:   plain.PaddingLeft(2).MarginLeft(2),
		Selected:  plain.Bold(true),
	}
}

// NoteColor returns a style painting text on a sticky note of the given
// hex color.
func NoteColor(hex string, noColor bool) lipgloss.Style {
	if noColor {
		return lipgloss.NewStyle()
	}

	return lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color(hex))
}

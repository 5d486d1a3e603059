package dashboard

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	reset      key.Binding
	switchMode key.Binding
	longer     key.Binding
	shorter    key.Binding
	nextPanel  key.Binding
	audio      key.Binding
	game       key.Binding
	breathing  key.Binding
	stats      key.Binding
	theme      key.Binding
	note       key.Binding
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	fire       key.Binding
	stopSounds key.Binding
	enter      key.Binding
	esc        key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	switchMode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "focus/break"),
	),
	longer: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+/-", "duration"),
	),
	shorter: key.NewBinding(
		key.WithKeys("-", "_"),
	),
	nextPanel: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next panel"),
	),
	audio: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1-4", "panels"),
	),
	game: key.NewBinding(
		key.WithKeys("2"),
	),
	breathing: key.NewBinding(
		key.WithKeys("3"),
	),
	stats: key.NewBinding(
		key.WithKeys("4"),
	),
	theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	note: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new note"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/↓", "select"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/→", "move"),
	),
	right: key.NewBinding(
		key.WithKeys("right", "l"),
	),
	fire: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "fire"),
	),
	stopSounds: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop sounds"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "toggle"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

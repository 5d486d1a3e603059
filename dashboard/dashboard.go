// Package dashboard is the terminal rendition of the widget: a bubbletea
// program that owns the session timer, the arcade engine and every panel
// around them
package dashboard

import (
	"context"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/ecofocus/arcade"
	"github.com/ayoisaiah/ecofocus/internal/breathing"
	"github.com/ayoisaiah/ecofocus/internal/clock"
	"github.com/ayoisaiah/ecofocus/internal/config"
	"github.com/ayoisaiah/ecofocus/internal/geo"
	"github.com/ayoisaiah/ecofocus/internal/notes"
	"github.com/ayoisaiah/ecofocus/internal/theme"
	"github.com/ayoisaiah/ecofocus/internal/ui"
	"github.com/ayoisaiah/ecofocus/internal/view"
	"github.com/ayoisaiah/ecofocus/stats"
	"github.com/ayoisaiah/ecofocus/store"
	"github.com/ayoisaiah/ecofocus/timer"
)

// Scheduler names.
const (
	countdownTicks = "countdown"
	frameTicks     = "frame"
	wallTicks      = "wall"
)

const (
	padding   = 2
	maxWidth  = 80
	volumeGap = 0.1

	// EnvDebug enables debug logging and message dumps.
	EnvDebug = "ECOFOCUS_DEBUG"
)

// Sound is the ambient mixer as seen by the dashboard.
type Sound interface {
	timer.SoundStopper
	Toggle(name string) (bool, error)
	SetVolume(name string, level float64) error
	Level(name string) float64
	Playing(name string) bool
	Fading() bool
}

// Locator resolves a display location.
type Locator interface {
	Lookup(ctx context.Context) string
}

// Options holds the collaborators of the dashboard. Locator is consulted
// once at startup; a nil Locator hides the location.
type Options struct {
	DB       store.DB
	Config   *config.Config
	Sound    Sound
	Notifier timer.Notifier
	Locator  Locator
	Now      func() time.Time
	Rand     *rand.Rand
	Channels []string
}

// ConfigMsg carries a reloaded configuration into the program.
type ConfigMsg struct {
	Config *config.Config
}

type locationMsg string

// Model is the bubbletea model of the widget.
type Model struct {
	db        store.DB
	cfg       *config.Config
	timer     *timer.Timer
	arcade    *arcade.Engine
	view      *view.Controller
	pacer     *breathing.Pacer
	sound     Sound
	notifier  timer.Notifier
	board     *notes.Board
	theme     *theme.Switcher
	locator   Locator
	countdown *clock.Tea
	frames    *clock.Tea
	wall      *clock.Tea
	now       func() time.Time
	keys      keymap
	help      help.Model
	progress  progress.Model
	noteInput textinput.Model
	styles    ui.Styles
	stats     stats.Stats
	channels  []string
	location  string
	status    string
	clock     time.Time
	channel   int
	noteColor int
	editing   bool
	debug     bool
}

// New wires the session timer, the arcade engine and the panel controller
// together.
func New(opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	cfg := opts.Config

	m := &Model{
		db:        opts.DB,
		cfg:       cfg,
		sound:     opts.Sound,
		notifier:  opts.Notifier,
		locator:   opts.Locator,
		channels:  opts.Channels,
		now:       opts.Now,
		keys:      defaultKeymap,
		help:      help.New(),
		countdown: clock.NewTea(countdownTicks, time.Second),
		frames:    clock.NewTea(frameTicks, arcade.FrameInterval),
		wall:      clock.NewTea(wallTicks, time.Second),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		debug:     os.Getenv(EnvDebug) != "",
	}

	m.clock = m.now()

	m.noteInput = textinput.New()
	m.noteInput.Placeholder = "Write a note"
	m.noteInput.CharLimit = 280

	timerOpts := []timer.Option{
		timer.WithView(m),
		timer.WithClock(opts.Now),
		timer.WithDefaults(cfg.Work.Duration, cfg.Break.Duration),
		timer.WithAutoBreak(cfg.Settings.AutoBreak),
		timer.WithSessionCmd(cfg.Settings.Cmd),
	}

	if opts.Sound != nil {
		timerOpts = append(timerOpts, timer.WithSound(opts.Sound))
	}

	if opts.Notifier != nil {
		timerOpts = append(timerOpts, timer.WithNotifier(opts.Notifier))
	}

	m.timer = timer.New(opts.DB, m.countdown, timerOpts...)

	arcadeOpts := []arcade.Option{
		arcade.WithHoldFrames(cfg.Settings.ArcadeHoldFrames),
	}

	if opts.Rand != nil {
		arcadeOpts = append(arcadeOpts, arcade.WithRand(opts.Rand))
	}

	m.arcade = arcade.New(opts.DB, m.timer, m.frames, arcadeOpts...)
	m.pacer = breathing.New(opts.Now)
	m.view = view.New(m.arcade, m.pacer, m.refreshStats)
	m.view.Bind(m.timer)

	m.board = notes.Load(opts.DB, opts.Now)
	m.theme = theme.Init(opts.DB, m.clock)
	m.applyStyles()

	if m.locator != nil {
		m.location = geo.Pending
	}

	if cfg.CLI.Work != 0 {
		m.timer.SetWorkDuration(cfg.CLI.Work)
	}

	if cfg.CLI.Break != 0 {
		m.timer.SetBreakDuration(cfg.CLI.Break)
	}

	m.refreshStats()

	return m
}

// SetView forces the visible panel on behalf of the session timer.
func (m *Model) SetView(p view.Panel) {
	m.view.SetView(p)
}

// Timer exposes the session timer.
func (m *Model) Timer() *timer.Timer {
	return m.timer
}

// Arcade exposes the arcade engine.
func (m *Model) Arcade() *arcade.Engine {
	return m.arcade
}

func (m *Model) refreshStats() {
	m.stats = stats.Compute(
		m.timer.History(),
		m.timer.TotalSessions(),
		m.now(),
		time.Local,
	)
}

func (m *Model) applyStyles() {
	m.styles = ui.NewStyles(m.theme.Dark(), m.cfg.Display.NoColor)
	ui.DarkTheme = m.theme.Dark()
}

// Init starts the wall clock and the location lookup.
func (m *Model) Init() tea.Cmd {
	m.wall.Start()

	cmds := []tea.Cmd{m.schedule(), textinput.Blink}

	if m.locator != nil {
		cmds = append(cmds, m.locate())
	}

	return tea.Batch(cmds...)
}

func (m *Model) locate() tea.Cmd {
	l := m.locator

	return func() tea.Msg {
		return locationMsg(l.Lookup(context.Background()))
	}
}

// schedule returns the commands for every tick that is due.
func (m *Model) schedule() tea.Cmd {
	return tea.Batch(
		m.countdown.Cmd(),
		m.frames.Cmd(),
		m.wall.Cmd(),
	)
}

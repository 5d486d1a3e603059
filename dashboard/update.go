package dashboard

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/ecofocus/arcade"
	"github.com/ayoisaiah/ecofocus/internal/clock"
	"github.com/ayoisaiah/ecofocus/internal/config"
	"github.com/ayoisaiah/ecofocus/internal/notes"
	"github.com/ayoisaiah/ecofocus/internal/view"
	"github.com/ayoisaiah/ecofocus/timer"
)

const lockedMsg = "Available during breaks only"

// Update applies msg and schedules the ticks that became due.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(clock.TickMsg); !ok && m.debug {
		slog.Debug(spew.Sdump(msg))
	}

	cmd := m.update(msg)

	return m, tea.Batch(cmd, m.schedule())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case clock.TickMsg:
		m.handleTick(msg)

	case locationMsg:
		m.location = string(msg)

	case ConfigMsg:
		m.applyConfig(msg.Config)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		m.help.Width = msg.Width

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return cmd

	default:
		if m.editing {
			var cmd tea.Cmd
			m.noteInput, cmd = m.noteInput.Update(msg)

			return cmd
		}
	}

	return nil
}

// handleTick routes a tick to the scheduler it belongs to. Ticks of a
// stopped run are dropped.
func (m *Model) handleTick(msg clock.TickMsg) {
	switch msg.Name {
	case countdownTicks:
		if !m.countdown.Accept(msg) {
			return
		}

		total := m.timer.TotalSessions()

		m.timer.Tick()

		if m.timer.TotalSessions() != total {
			m.refreshStats()
		}

	case frameTicks:
		if m.frames.Accept(msg) {
			m.arcade.Frame()
		}

	case wallTicks:
		if m.wall.Accept(msg) {
			m.clock = m.now()
		}
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if m.editing {
		return m.handleNoteInput(msg)
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.keys.quit):
		return tea.Quit

	case key.Matches(msg, m.keys.togglePlay):
		m.timer.Toggle()

	case key.Matches(msg, m.keys.reset):
		m.timer.Reset()

	case key.Matches(msg, m.keys.switchMode):
		m.timer.SwitchMode()

	case key.Matches(msg, m.keys.longer):
		m.adjustDuration(1)

	case key.Matches(msg, m.keys.shorter):
		m.adjustDuration(-1)

	case key.Matches(msg, m.keys.nextPanel):
		m.cyclePanel()

	case key.Matches(msg, m.keys.audio):
		m.selectPanel(view.Audio)

	case key.Matches(msg, m.keys.game):
		m.selectPanel(view.Game)

	case key.Matches(msg, m.keys.breathing):
		m.selectPanel(view.Breathing)

	case key.Matches(msg, m.keys.stats):
		m.selectPanel(view.Stats)

	case key.Matches(msg, m.keys.theme):
		m.theme.Toggle()
		m.applyStyles()

	case key.Matches(msg, m.keys.note):
		return m.startNote()

	case key.Matches(msg, m.keys.stopSounds):
		if m.sound != nil {
			m.sound.StopAllSound()
		}

	default:
		m.handlePanelKey(msg)
	}

	return nil
}

func (m *Model) handlePanelKey(msg tea.KeyMsg) {
	switch m.view.Current() {
	case view.Audio:
		m.handleAudioKey(msg)

	case view.Game:
		switch {
		case key.Matches(msg, m.keys.left):
			m.arcade.Press(arcade.Left)
		case key.Matches(msg, m.keys.right):
			m.arcade.Press(arcade.Right)
		case key.Matches(msg, m.keys.fire):
			m.arcade.Fire()
		}

	case view.Breathing, view.Stats:
	}
}

func (m *Model) handleAudioKey(msg tea.KeyMsg) {
	if m.sound == nil || len(m.channels) == 0 {
		return
	}

	name := m.channels[m.channel]

	switch {
	case key.Matches(msg, m.keys.up):
		m.channel = max(m.channel-1, 0)

	case key.Matches(msg, m.keys.down):
		m.channel = min(m.channel+1, len(m.channels)-1)

	case key.Matches(msg, m.keys.enter):
		if _, err := m.sound.Toggle(name); err != nil {
			slog.Warn("unable to toggle sound",
				slog.String("channel", name),
				slog.Any("error", err),
			)

			m.status = err.Error()
		}

	case key.Matches(msg, m.keys.left):
		m.nudgeVolume(name, -volumeGap)

	case key.Matches(msg, m.keys.right):
		m.nudgeVolume(name, volumeGap)
	}
}

func (m *Model) nudgeVolume(name string, delta float64) {
	if m.sound.Fading() {
		return
	}

	level := min(max(m.sound.Level(name)+delta, 0), 1)

	if err := m.sound.SetVolume(name, level); err != nil {
		m.status = err.Error()
	}
}

// adjustDuration changes the duration of the current mode by delta minutes.
func (m *Model) adjustDuration(delta int) {
	if m.timer.Mode() == timer.Focus {
		m.timer.SetWorkDuration(m.timer.WorkDuration() + delta)
		return
	}

	m.timer.SetBreakDuration(m.timer.BreakDuration() + delta)
}

func (m *Model) selectPanel(p view.Panel) {
	if !m.view.Select(p) {
		m.status = lockedMsg
	}
}

// cyclePanel selects the next panel that is not locked.
func (m *Model) cyclePanel() {
	i := slices.Index(view.Panels, m.view.Current())

	for range view.Panels {
		i = (i + 1) % len(view.Panels)

		if m.view.Select(view.Panels[i]) {
			return
		}
	}
}

func (m *Model) startNote() tea.Cmd {
	m.editing = true
	m.noteInput.Reset()

	return m.noteInput.Focus()
}

func (m *Model) stopEditing() {
	m.editing = false
	m.noteInput.Blur()
}

func (m *Model) handleNoteInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit

	case tea.KeyEsc:
		m.stopEditing()

	case tea.KeyEnter:
		m.saveNote(m.noteInput.Value())
		m.stopEditing()

	default:
		var cmd tea.Cmd
		m.noteInput, cmd = m.noteInput.Update(msg)

		return cmd
	}

	return nil
}

// saveNote pins content on a new note. Colors rotate through the palette.
func (m *Model) saveNote(content string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}

	color := notes.Palette[m.noteColor%len(notes.Palette)]
	m.noteColor++

	n, err := m.board.Add(color)
	if err == nil {
		err = m.board.Update(n.ID, content)
	}

	if err != nil {
		slog.Warn("unable to save note", slog.Any("error", err))
		m.status = err.Error()
	}
}

type notificationToggler interface {
	SetEnabled(enabled bool)
}

// applyConfig takes over the settings of a reloaded config file. Command
// line overrides stay in effect.
func (m *Model) applyConfig(c *config.Config) {
	if c.Work.Duration != m.cfg.Work.Duration && m.cfg.CLI.Work == 0 {
		m.timer.SetWorkDuration(c.Work.Duration)
	}

	if c.Break.Duration != m.cfg.Break.Duration && m.cfg.CLI.Break == 0 {
		m.timer.SetBreakDuration(c.Break.Duration)
	}

	if n, ok := m.notifier.(notificationToggler); ok {
		n.SetEnabled(c.Notifications.Enabled)
	}

	c.CLI = m.cfg.CLI
	c.Display.NoColor = m.cfg.Display.NoColor

	m.cfg = c
	m.applyStyles()
	m.status = "Configuration reloaded"
}

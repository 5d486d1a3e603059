package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/ecofocus/arcade"
	"github.com/ayoisaiah/ecofocus/internal/timeutil"
	"github.com/ayoisaiah/ecofocus/internal/ui"
	"github.com/ayoisaiah/ecofocus/internal/view"
	"github.com/ayoisaiah/ecofocus/timer"
)

const (
	volumeBars   = 10
	noteWidth    = 24
	sparkBlocks  = "▁▂▃▄▅▆▇█"
	noSessionMsg = "No sessions recorded yet"
)

var panelTitles = map[view.Panel]string{
	view.Audio:     "Sounds",
	view.Game:      "Arcade",
	view.Breathing: "Breathe",
	view.Stats:     "Stats",
}

// formatTimeRemaining returns the remaining time formatted as "MM:SS".
func (m *Model) formatTimeRemaining() string {
	mins, secs := timeutil.SecsToMinsAndSecs(m.timer.Remaining())

	return fmt.Sprintf("%02d:%02d", mins, secs)
}

func (m *Model) timeFormat() string {
	if m.cfg.Display.TwentyFourHour {
		return "15:04"
	}

	return "03:04 PM"
}

func (m *Model) headerView() string {
	var s strings.Builder

	s.WriteString(m.styles.Main.Render(m.clock.Format(m.timeFormat())))
	s.WriteString("  ")
	s.WriteString(m.styles.Secondary.Render(m.clock.Format("Monday, January 2")))

	if m.location != "" {
		s.WriteString("  ")
		s.WriteString(m.styles.Hint.Render(m.location))
	}

	return s.String()
}

func (m *Model) timerView() string {
	var s strings.Builder

	if m.timer.Mode() == timer.Focus {
		s.WriteString(m.styles.Work.Render("Focus"))
	} else {
		s.WriteString(m.styles.Break.Render("Break"))
	}

	if m.timer.Running() {
		end := m.clock.Add(time.Duration(m.timer.Remaining()) * time.Second)
		s.WriteString(m.styles.Hint.Render("until " + end.Format(m.timeFormat())))
	} else {
		s.WriteString(m.styles.Secondary.Render("[Paused]"))
	}

	s.WriteString(m.styles.Hint.Render(fmt.Sprintf(
		"  focus %dm / break %dm",
		m.timer.WorkDuration(),
		m.timer.BreakDuration(),
	)))

	percent := 0.0
	if d := m.timer.Duration(); d > 0 {
		percent = float64(m.timer.Remaining()) / float64(d)
	}

	s.WriteString("\n\n")
	s.WriteString(m.styles.Main.Render(m.formatTimeRemaining()))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(1 - percent))
	s.WriteString("\n")
	s.WriteString(m.styles.Hint.Render(
		fmt.Sprintf("Sessions completed: %d", m.timer.TotalSessions()),
	))

	return s.String()
}

func (m *Model) tabsView() string {
	tabs := make([]string, 0, len(view.Panels))

	for _, p := range view.Panels {
		title := panelTitles[p]

		switch {
		case p == m.view.Current():
			tabs = append(tabs, m.styles.ActiveTab.Render(title))
		case m.view.Locked(p):
			tabs = append(tabs, m.styles.LockedTab.Render(title))
		default:
			tabs = append(tabs, m.styles.Tab.Render(title))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) panelView() string {
	switch m.view.Current() {
	case view.Game:
		return m.gameView()
	case view.Breathing:
		return m.breathingView()
	case view.Stats:
		return m.statsView()
	default:
		return m.audioView()
	}
}

func (m *Model) audioView() string {
	if m.sound == nil || len(m.channels) == 0 {
		return m.styles.Hint.Render("Ambient sound is unavailable")
	}

	lines := make([]string, 0, len(m.channels)+1)

	for i, name := range m.channels {
		cursor := "  "
		label := m.styles.Secondary.Render(fmt.Sprintf("%-8s", name))

		if i == m.channel {
			cursor = "> "
			label = m.styles.Selected.Render(fmt.Sprintf("%-8s", name))
		}

		state := "off"
		if m.sound.Playing(name) {
			state = "on "
		}

		level := m.sound.Level(name)
		filled := int(level*volumeBars + 0.5)

		lines = append(lines, fmt.Sprintf(
			"%s%s %s [%s%s] %3d%%",
			cursor,
			label,
			state,
			strings.Repeat("#", filled),
			strings.Repeat(".", volumeBars-filled),
			int(level*100+0.5),
		))
	}

	if m.sound.Fading() {
		lines = append(lines, m.styles.Hint.Render("fading out..."))
	}

	return strings.Join(lines, "\n")
}

func (m *Model) gameView() string {
	snap := m.arcade.Snapshot()

	var s strings.Builder

	s.WriteString(renderField(snap, gridCols, gridRows))
	s.WriteString("\n")
	s.WriteString(m.styles.Secondary.Render(fmt.Sprintf(
		"Score %d   High %d   Wave %d",
		snap.Score,
		snap.HighScore,
		snap.Level,
	)))

	switch snap.State {
	case arcade.Idle:
		s.WriteString("\n" + m.styles.Hint.Render("Press space to start"))
	case arcade.Stopped:
		s.WriteString("\n" + m.styles.Hint.Render("Game over, the break has ended"))
	case arcade.Running:
	}

	return s.String()
}

func (m *Model) breathingView() string {
	var s strings.Builder

	s.WriteString(m.styles.Main.Render(m.pacer.Label()))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.pacer.Progress()))

	return s.String()
}

func (m *Model) statsView() string {
	st := m.stats

	if st.Recorded == 0 && st.TotalSessions == 0 {
		return m.styles.Hint.Render(noSessionMsg)
	}

	hrs, mins := timeutil.MinsToHoursAndMins(st.MinutesLogged)

	busiest := "-"
	if st.BusiestHour >= 0 {
		busiest = fmt.Sprintf("%02d:00", st.BusiestHour)
	}

	rows := [][2]string{
		{"Total sessions", fmt.Sprint(st.TotalSessions)},
		{"Last 90 days", fmt.Sprint(st.Recorded)},
		{"Time logged", fmt.Sprintf("%dh %dm", hrs, mins)},
		{"Best streak", fmt.Sprintf("%d days", st.BestStreak)},
		{"Current streak", fmt.Sprintf("%d days", st.CurrentStreak)},
		{"Busiest hour", busiest},
	}

	lines := make([]string, 0, len(rows)+2)

	for _, r := range rows {
		lines = append(lines, fmt.Sprintf(
			"%s %s",
			m.styles.Hint.Render(fmt.Sprintf("%-15s", r[0])),
			m.styles.Secondary.Render(r[1]),
		))
	}

	lines = append(lines, "", sparkline(st.Hourly[:]))

	return strings.Join(lines, "\n")
}

// sparkline draws one block per value scaled against the largest value.
func sparkline(values []int) string {
	blocks := []rune(sparkBlocks)

	peak := 0
	for _, v := range values {
		peak = max(peak, v)
	}

	var s strings.Builder

	for _, v := range values {
		if peak == 0 || v == 0 {
			s.WriteRune(' ')
			continue
		}

		idx := (v*len(blocks) - 1) / peak
		s.WriteRune(blocks[min(idx, len(blocks)-1)])
	}

	return s.String()
}

func (m *Model) notesView() string {
	var s strings.Builder

	s.WriteString(m.styles.Main.Render("Notes"))
	s.WriteString("\n")

	list := m.board.List()
	if len(list) == 0 {
		s.WriteString(m.styles.Hint.Render("Press n to add a note"))
	}

	for _, n := range list {
		s.WriteString("\n")
		s.WriteString(ui.NoteColor(n.Color, m.cfg.Display.NoColor).Render(truncate(n.Content, noteWidth)))
		s.WriteString("\n")
	}

	if m.editing {
		s.WriteString("\n")
		s.WriteString(m.noteInput.View())
	}

	return m.styles.Sidebar.Render(s.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}

func (m *Model) helpView() string {
	if m.editing {
		return m.help.ShortHelpView([]key.Binding{m.keys.esc})
	}

	bindings := []key.Binding{
		m.keys.togglePlay,
		m.keys.reset,
		m.keys.switchMode,
		m.keys.longer,
		m.keys.audio,
	}

	switch m.view.Current() {
	case view.Audio:
		bindings = append(bindings, m.keys.up, m.keys.enter, m.keys.stopSounds)
	case view.Game:
		bindings = append(bindings, m.keys.left, m.keys.fire)
	case view.Breathing, view.Stats:
	}

	bindings = append(bindings, m.keys.theme, m.keys.note, m.keys.quit)

	return m.help.ShortHelpView(bindings)
}

// View renders the widget.
func (m *Model) View() string {
	main := lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		"",
		m.timerView(),
		"",
		m.tabsView(),
		m.styles.Panel.Render(m.panelView()),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, main, m.notesView())

	var s strings.Builder

	s.WriteString(body)

	if m.status != "" {
		s.WriteString("\n\n" + m.styles.Hint.Render(m.status))
	}

	s.WriteString("\n\n" + m.helpView())

	return m.styles.Base.Render(s.String())
}

// Package clock models periodic callbacks (the countdown tick and the arcade
// frame) as handles that can be started, stopped and inspected
package clock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler is a periodic tick source. Stopping a scheduler guarantees that
// no further tick from the stopped run is delivered. A tick that is already
// executing is not interrupted.
type Scheduler interface {
	Start()
	Stop()
	Active() bool
}

// TickMsg is delivered to the bubbletea program by a Tea scheduler.
type TickMsg struct {
	Time time.Time
	Name string
	Gen  uint64
}

// Tea schedules ticks through bubbletea commands. Every Start and Stop bumps
// the generation so that ticks already queued by an earlier run are dropped
// by Accept.
type Tea struct {
	name     string
	interval time.Duration
	gen      uint64
	active   bool
	pending  bool
}

// NewTea returns a stopped scheduler that ticks every interval.
func NewTea(name string, interval time.Duration) *Tea {
	return &Tea{
		name:     name,
		interval: interval,
	}
}

// Start begins a new run, cancelling any previous one.
func (t *Tea) Start() {
	t.gen++
	t.active = true
	t.pending = true
}

func (t *Tea) Stop() {
	t.gen++
	t.active = false
	t.pending = false
}

func (t *Tea) Active() bool {
	return t.active
}

// Accept reports whether msg belongs to the current run. An accepted tick
// arms the next one.
func (t *Tea) Accept(msg TickMsg) bool {
	if msg.Name != t.name || msg.Gen != t.gen || !t.active {
		return false
	}

	t.pending = true

	return true
}

// Msg returns a tick of the current run, as if it had just been delivered.
func (t *Tea) Msg(now time.Time) TickMsg {
	return TickMsg{
		Name: t.name,
		Gen:  t.gen,
		Time: now,
	}
}

// Cmd returns the command delivering the next tick, or nil if none is due.
func (t *Tea) Cmd() tea.Cmd {
	if !t.active || !t.pending {
		return nil
	}

	t.pending = false

	name, gen := t.name, t.gen

	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{
			Name: name,
			Gen:  gen,
			Time: now,
		}
	})
}

// Manual is a Scheduler whose ticks are driven by the caller. It records how
// often it was started and stopped.
type Manual struct {
	Starts int
	Stops  int
	active bool
}

func (m *Manual) Start() {
	m.Starts++
	m.active = true
}

func (m *Manual) Stop() {
	m.Stops++
	m.active = false
}

func (m *Manual) Active() bool {
	return m.active
}

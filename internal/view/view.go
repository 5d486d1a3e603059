// Package view decides which of the widget's subsystems are active for the
// selected panel and the current timer mode
package view

// Panel identifies one of the widget's panels.
type Panel string

const (
	Audio     Panel = "audio"
	Game      Panel = "game"
	Breathing Panel = "breathing"
	Stats     Panel = "stats"
)

// Panels lists the panels in display order.
var Panels = []Panel{Audio, Game, Breathing, Stats}

// Gate reports whether break-only panels are unlocked.
type Gate interface {
	GameEnabled() bool
}

// Arcade is the arcade engine as seen by the controller.
type Arcade interface {
	Init()
	Stop()
}

// Pacer is the breathing animation as seen by the controller.
type Pacer interface {
	Start()
	Stop()
}

type lockedGate struct{}

func (lockedGate) GameEnabled() bool { return false }

// Controller dispatches panel changes to the arcade engine, breathing pacer
// and statistics view.
type Controller struct {
	gate    Gate
	game    Arcade
	pacer   Pacer
	onStats func()
	current Panel
}

// New returns a controller showing the audio panel. Break-only panels stay
// locked until a gate is bound.
func New(game Arcade, pacer Pacer, onStats func()) *Controller {
	if onStats == nil {
		onStats = func() {}
	}

	return &Controller{
		gate:    lockedGate{},
		game:    game,
		pacer:   pacer,
		onStats: onStats,
		current: Audio,
	}
}

// Bind sets the gate that unlocks break-only panels.
func (c *Controller) Bind(g Gate) {
	c.gate = g
}

// Current returns the selected panel.
func (c *Controller) Current() Panel {
	return c.current
}

// Locked reports whether p can not be selected right now.
func (c *Controller) Locked(p Panel) bool {
	return (p == Game || p == Breathing) && !c.gate.GameEnabled()
}

// Select switches to p on behalf of the user. Locked panels are refused.
func (c *Controller) Select(p Panel) bool {
	if c.Locked(p) {
		return false
	}

	c.SetView(p)

	return true
}

// SetView shows p and starts or stops the subsystems tied to panels.
func (c *Controller) SetView(p Panel) {
	c.current = p

	if p == Game && c.gate.GameEnabled() {
		c.game.Init()
	} else {
		c.game.Stop()
	}

	if p == Breathing && c.gate.GameEnabled() {
		c.pacer.Start()
	} else {
		c.pacer.Stop()
	}

	if p == Stats {
		c.onStats()
	}
}

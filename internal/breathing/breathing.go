// Package breathing paces a box-style breathing exercise
package breathing

import "time"

// Phase is a step of the breathing cycle.
type Phase struct {
	Label    string
	Duration time.Duration
}

var (
	In   = Phase{Label: "Breathe In", Duration: 5 * time.Second}
	Hold = Phase{Label: "Hold", Duration: 3 * time.Second}
	Out  = Phase{Label: "Breathe Out", Duration: 5 * time.Second}
)

// ReadyLabel is shown while the exercise is not running.
const ReadyLabel = "Ready?"

// Cycle is the sequence of phases, repeated while the exercise runs.
var Cycle = []Phase{In, Hold, Out}

// CycleDuration is the length of one full cycle.
var CycleDuration = In.Duration + Hold.Duration + Out.Duration

// PhaseAt returns the phase active elapsed time into the exercise and how
// far through that phase it is, from 0 to 1.
func PhaseAt(elapsed time.Duration) (Phase, float64) {
	if elapsed < 0 {
		elapsed = 0
	}

	offset := elapsed % CycleDuration

	for _, p := range Cycle {
		if offset < p.Duration {
			return p, float64(offset) / float64(p.Duration)
		}

		offset -= p.Duration
	}

	return Out, 1
}

// Pacer runs the exercise.
type Pacer struct {
	now     func() time.Time
	started time.Time
	active  bool
}

// New returns a stopped pacer. A nil now uses time.Now.
func New(now func() time.Time) *Pacer {
	if now == nil {
		now = time.Now
	}

	return &Pacer{now: now}
}

// Start restarts the exercise from the first phase.
func (p *Pacer) Start() {
	p.started = p.now()
	p.active = true
}

func (p *Pacer) Stop() {
	p.active = false
}

func (p *Pacer) Active() bool {
	return p.active
}

// Label returns the instruction to display.
func (p *Pacer) Label() string {
	if !p.active {
		return ReadyLabel
	}

	phase, _ := PhaseAt(p.now().Sub(p.started))

	return phase.Label
}

// Progress returns the size of the breathing guide from 0 (empty lungs) to 1
// (full lungs). It grows while breathing in, stays full while holding and
// shrinks while breathing out.
func (p *Pacer) Progress() float64 {
	if !p.active {
		return 0
	}

	phase, done := PhaseAt(p.now().Sub(p.started))

	switch phase {
	case In:
		return done
	case Hold:
		return 1
	default:
		return 1 - done
	}
}

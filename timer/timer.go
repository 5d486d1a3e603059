// Package timer operates the focus/break countdown, counts completed focus
// sessions and keeps the session history log
package timer

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/ecofocus/internal/clock"
	"github.com/ayoisaiah/ecofocus/internal/view"
	"github.com/ayoisaiah/ecofocus/store"
)

// Mode is the timer mode.
type Mode int

const (
	Focus Mode = iota
	Break
)

func (m Mode) String() string {
	if m == Break {
		return "Break"
	}

	return "Focus"
}

const (
	MinWorkDuration      = 5
	MinBreakDuration     = 1
	DefaultWorkDuration  = 25
	DefaultBreakDuration = 5
)

// Notifier delivers user-facing notifications.
type Notifier interface {
	Notify(title, body string)
}

// SoundStopper fades out and stops every ambient sound channel.
type SoundStopper interface {
	StopAllSound()
}

// ViewSetter forces the visible panel.
type ViewSetter interface {
	SetView(p view.Panel)
}

type (
	nopNotifier struct{}
	nopSound    struct{}
	nopView     struct{}
)

func (nopNotifier) Notify(string, string) {}
func (nopSound) StopAllSound()            {}
func (nopView) SetView(view.Panel)        {}

// Timer is the session state machine. It is not safe for concurrent use; all
// calls are expected to come from the program's update loop.
type Timer struct {
	db         store.DB
	ticker     clock.Scheduler
	notifier   Notifier
	sound      SoundStopper
	view       ViewSetter
	now        func() time.Time
	runCmd     func(string) error
	sessionCmd string
	mode       Mode
	remaining  int
	work       int
	brk        int
	total      int
	autoBreak  bool
	running    bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithNotifier sets the notification collaborator.
func WithNotifier(n Notifier) Option {
	return func(t *Timer) {
		t.notifier = n
	}
}

// WithSound sets the ambient sound collaborator.
func WithSound(s SoundStopper) Option {
	return func(t *Timer) {
		t.sound = s
	}
}

// WithView sets the panel collaborator.
func WithView(v ViewSetter) Option {
	return func(t *Timer) {
		t.view = v
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// WithDefaults sets the durations used when none have been persisted.
func WithDefaults(work, brk int) Option {
	return func(t *Timer) {
		t.work = work
		t.brk = brk
	}
}

// WithAutoBreak switches to break mode as soon as a focus session completes.
func WithAutoBreak(enabled bool) Option {
	return func(t *Timer) {
		t.autoBreak = enabled
	}
}

// WithSessionCmd runs cmd after every completed focus session.
func WithSessionCmd(cmd string) Option {
	return func(t *Timer) {
		t.sessionCmd = cmd
	}
}

// WithCommandRunner replaces the function used to run the session command.
func WithCommandRunner(run func(string) error) Option {
	return func(t *Timer) {
		t.runCmd = run
	}
}

// New returns a stopped timer in focus mode. Persisted durations and the
// session counter are loaded from db.
func New(db store.DB, ticker clock.Scheduler, opts ...Option) *Timer {
	t := &Timer{
		db:       db,
		ticker:   ticker,
		notifier: nopNotifier{},
		sound:    nopSound{},
		view:     nopView{},
		now:      time.Now,
		runCmd:   runSessionCmd,
		work:     DefaultWorkDuration,
		brk:      DefaultBreakDuration,
		mode:     Focus,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.work = clampWork(t.readInt(store.KeyWorkDuration, t.work))
	t.brk = clampBreak(t.readInt(store.KeyBreakDuration, t.brk))
	t.total = t.readInt(store.KeyTotalSessions, 0)
	t.remaining = t.work * 60

	return t
}

func clampWork(n int) int {
	return max(n, MinWorkDuration)
}

func clampBreak(n int) int {
	return max(n, MinBreakDuration)
}

func (t *Timer) readInt(key string, fallback int) int {
	n, err := store.Int(t.db, key, fallback)
	if err != nil {
		slog.Warn("unable to read stored value", slog.String("key", key), slog.Any("error", err))
	}

	return n
}

func (t *Timer) writeInt(key string, n int) {
	err := store.SetInt(t.db, key, n)
	if err != nil {
		slog.Warn("unable to persist value", slog.String("key", key), slog.Any("error", err))
	}
}

// Mode returns the current mode.
func (t *Timer) Mode() Mode {
	return t.mode
}

// Remaining returns the seconds left in the current countdown.
func (t *Timer) Remaining() int {
	return t.remaining
}

// Running reports whether the countdown is active.
func (t *Timer) Running() bool {
	return t.running
}

// WorkDuration returns the focus duration in minutes.
func (t *Timer) WorkDuration() int {
	return t.work
}

// BreakDuration returns the break duration in minutes.
func (t *Timer) BreakDuration() int {
	return t.brk
}

// Duration returns the full length of the current mode in seconds.
func (t *Timer) Duration() int {
	if t.mode == Break {
		return t.brk * 60
	}

	return t.work * 60
}

// TotalSessions returns the number of completed focus sessions.
func (t *Timer) TotalSessions() int {
	return t.total
}

// GameEnabled reports whether break-only activities are unlocked.
func (t *Timer) GameEnabled() bool {
	return t.mode == Break
}

// Start begins the countdown. It does nothing if the countdown is already
// running.
func (t *Timer) Start() {
	if t.running {
		return
	}

	// a countdown that reached zero has already fired its completion
	if t.remaining == 0 {
		t.remaining = t.Duration()
	}

	t.ticker.Stop()
	t.ticker.Start()
	t.running = true
}

// Pause halts the countdown and stops ambient sound. It does nothing if the
// countdown is not running.
func (t *Timer) Pause() {
	if !t.running {
		return
	}

	t.ticker.Stop()
	t.running = false
	t.sound.StopAllSound()
}

// Toggle starts a stopped countdown or pauses a running one.
func (t *Timer) Toggle() {
	if t.running {
		t.Pause()
		return
	}

	t.Start()
}

// Reset stops the countdown and restores the full duration of the current
// mode.
func (t *Timer) Reset() {
	t.ticker.Stop()
	t.running = false
	t.remaining = t.Duration()
}

// Tick advances the countdown by one second.
func (t *Timer) Tick() {
	if !t.running {
		return
	}

	if t.remaining > 0 {
		t.remaining--
	}

	if t.remaining > 0 {
		return
	}

	t.ticker.Stop()
	t.running = false

	if t.mode == Focus {
		t.completeFocus()

		if t.autoBreak {
			t.SwitchMode()
		}

		return
	}

	t.completeBreak()
	t.SwitchMode()
}

func (t *Timer) completeFocus() {
	t.total++
	t.writeInt(store.KeyTotalSessions, t.total)

	t.appendHistory(t.now(), t.work)

	t.notifier.Notify("Focus Session Complete", "Great job! Take a break.")
	t.sound.StopAllSound()

	if t.sessionCmd != "" {
		err := t.runCmd(t.sessionCmd)
		if err != nil {
			slog.Error("session command failed", slog.Any("error", err))
		}
	}
}

func (t *Timer) completeBreak() {
	t.notifier.Notify("Break Over!", "Time to get back to work.")
	t.sound.StopAllSound()
}

// SwitchMode toggles between focus and break and resets the countdown.
// Entering focus forces the audio panel.
func (t *Timer) SwitchMode() {
	if t.mode == Focus {
		t.mode = Break
	} else {
		t.mode = Focus
	}

	t.Reset()

	if t.mode == Focus {
		t.view.SetView(view.Audio)
	}
}

// SetWorkDuration sets the focus duration in minutes. Values below the
// minimum are clamped.
func (t *Timer) SetWorkDuration(minutes int) {
	t.work = clampWork(minutes)
	t.writeInt(store.KeyWorkDuration, t.work)

	if t.mode == Focus && !t.running {
		t.remaining = t.work * 60
	}
}

// SetBreakDuration sets the break duration in minutes. Values below the
// minimum are clamped.
func (t *Timer) SetBreakDuration(minutes int) {
	t.brk = clampBreak(minutes)
	t.writeInt(store.KeyBreakDuration, t.brk)

	if t.mode == Break && !t.running {
		t.remaining = t.brk * 60
	}
}

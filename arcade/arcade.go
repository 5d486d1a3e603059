// Package arcade simulates the break-time minigame: a player ship at the
// bottom of the field shoots at waves of enemies that sway in formation and
// occasionally dive at the player
package arcade

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/ayoisaiah/ecofocus/internal/clock"
	"github.com/ayoisaiah/ecofocus/store"
)

// Play-field geometry and motion constants.
const (
	FieldWidth  = 600
	FieldHeight = 400

	PlayerWidth  = 30
	PlayerHeight = 20
	PlayerSpeed  = 5
	playerStartX = 280
	playerStartY = 360

	ProjectileWidth  = 6
	ProjectileHeight = 10
	ProjectileSpeed  = 7
	muzzleOffset     = 12

	EntityWidth  = 30
	EntityHeight = 20

	HitScore  = 10
	WaveBonus = 50

	diveInterval   = 100
	directionFlip  = 200
	swayFrequency  = 0.05
	swayAmplitude  = 10
	diveMultiplier = 2.5
	homingStep     = 1
)

// FrameInterval is the delay between two frames (about 60 fps).
const FrameInterval = time.Second / 60

// State is the lifecycle state of the engine.
type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "idle"
	}
}

// Host is the session the game runs inside of.
type Host interface {
	// GameEnabled reports whether the game may run (break mode)
	GameEnabled() bool
	// Running reports whether the session countdown is active
	Running() bool
	// Start begins the session countdown
	Start()
}

// Engine owns the game state. Like the session timer, it is driven
// exclusively from the program's update loop.
type Engine struct {
	db          store.DB
	host        Host
	frames      clock.Scheduler
	rng         *rand.Rand
	keys        held
	entities    []Entity
	projectiles []Rect
	player      Rect
	baseSpeed   float64
	state       State
	score       int
	highScore   int
	level       int
	frame       int
	holdFrames  int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the source used to pick divers.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithHoldFrames makes pressed keys release themselves after n frames.
// Zero keeps keys down until Release is called.
func WithHoldFrames(n int) Option {
	return func(e *Engine) {
		e.holdFrames = n
	}
}

// New returns an idle engine showing the first wave. The high score is
// loaded from db.
func New(db store.DB, host Host, frames clock.Scheduler, opts ...Option) *Engine {
	e := &Engine{
		db:     db,
		host:   host,
		frames: frames,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.rng == nil {
		seed := uint64(time.Now().UnixNano())
		e.rng = rand.New(rand.NewPCG(seed, seed>>32))
	}

	e.keys = newHeld(e.holdFrames)

	hs, err := store.Int(db, store.KeyGameHighScore, 0)
	if err != nil {
		slog.Warn("unable to read high score", slog.Any("error", err))
	}

	e.highScore = hs

	e.Init()

	return e
}

// Init resets the game to the first wave and waits for the start input.
func (e *Engine) Init() {
	e.frames.Stop()
	e.state = Idle
	e.score = 0
	e.frame = 0
	e.level = 1
	e.player = Rect{
		X: playerStartX,
		Y: playerStartY,
		W: PlayerWidth,
		H: PlayerHeight,
	}
	e.projectiles = nil
	e.keys.clear()
	e.spawn()
}

func (e *Engine) spawn() {
	e.entities = Spawn(e.level)
	e.baseSpeed = BaseSpeed(e.level)
}

// StartLoop runs the game. The session countdown is started if it is not
// already running. It reports false, doing nothing, outside of break mode.
func (e *Engine) StartLoop() bool {
	if !e.host.GameEnabled() {
		return false
	}

	if !e.host.Running() {
		e.host.Start()
	}

	if e.state != Running {
		e.state = Running
		e.frames.Start()
	}

	return true
}

// Stop halts the game loop without resetting it.
func (e *Engine) Stop() {
	e.frames.Stop()

	if e.state == Running {
		e.state = Stopped
	}
}

// Fire starts a game that is not running, otherwise it launches a
// projectile from the player's ship.
func (e *Engine) Fire() {
	if e.state != Running {
		e.StartLoop()
		return
	}

	e.projectiles = append(e.projectiles, Rect{
		X: e.player.X + muzzleOffset,
		Y: e.player.Y,
		W: ProjectileWidth,
		H: ProjectileHeight,
	})
}

// Press holds down a steering key.
func (e *Engine) Press(k Key) {
	e.keys.press(k)
}

// Release lets go of a steering key.
func (e *Engine) Release(k Key) {
	e.keys.release(k)
}

// Frame advances a running game by one frame. A game whose break has ended
// is stopped instead.
func (e *Engine) Frame() {
	if e.state != Running {
		return
	}

	if !e.host.GameEnabled() {
		e.Stop()
		return
	}

	e.Update()
}

// Update runs one simulation step.
func (e *Engine) Update() {
	e.frame++

	e.movePlayer()
	e.moveProjectiles()
	e.moveEntities()

	if e.frame%diveInterval == 0 {
		e.triggerDive()
	}

	e.collide()
	e.checkWave()
}

func (e *Engine) movePlayer() {
	if e.keys.down(Left) {
		e.player.X = max(e.player.X-PlayerSpeed, 0)
	}

	if e.keys.down(Right) {
		e.player.X = min(e.player.X+PlayerSpeed, FieldWidth-e.player.W)
	}

	e.keys.advance()
}

func (e *Engine) moveProjectiles() {
	for i := range e.projectiles {
		e.projectiles[i].Y -= ProjectileSpeed
	}

	e.projectiles = slices.DeleteFunc(e.projectiles, func(p Rect) bool {
		return p.Y < 0
	})
}

func (e *Engine) direction() float64 {
	if (e.frame/directionFlip)%2 == 0 {
		return 1
	}

	return -1
}

func (e *Engine) moveEntities() {
	speed := e.baseSpeed + float64(e.score)/100
	sway := math.Sin(float64(e.frame)*swayFrequency) * swayAmplitude
	dir := e.direction()

	for i := range e.entities {
		en := &e.entities[i]
		if !en.Alive {
			continue
		}

		switch en.Behaviour {
		case Formation:
			en.X += speed * dir
			en.Y = en.AnchorY + sway
		case Diving:
			en.Y += speed * diveMultiplier

			if en.X < e.player.X {
				en.X += homingStep
			} else {
				en.X -= homingStep
			}

			if en.Y > FieldHeight {
				en.Behaviour = Formation
				en.Y = 0
			}
		}
	}
}

func (e *Engine) triggerDive() {
	var candidates []int

	for i, en := range e.entities {
		if en.Alive && en.Behaviour == Formation {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) == 0 {
		return
	}

	e.entities[candidates[e.rng.IntN(len(candidates))]].Behaviour = Diving
}

// collide resolves projectile hits. A projectile destroys at most one
// entity.
func (e *Engine) collide() {
	e.projectiles = slices.DeleteFunc(e.projectiles, func(p Rect) bool {
		for i := range e.entities {
			en := &e.entities[i]
			if !en.Alive || !p.Overlaps(en.Rect) {
				continue
			}

			en.Alive = false
			e.addScore(HitScore)

			return true
		}

		return false
	})
}

func (e *Engine) checkWave() {
	for _, en := range e.entities {
		if en.Alive {
			return
		}
	}

	e.level++
	e.spawn()
	e.addScore(WaveBonus)
}

func (e *Engine) addScore(n int) {
	e.score += n

	if e.score <= e.highScore {
		return
	}

	e.highScore = e.score

	err := store.SetInt(e.db, store.KeyGameHighScore, e.highScore)
	if err != nil {
		slog.Warn("unable to persist high score", slog.Any("error", err))
	}
}

// Snapshot is a read-only copy of the game state used for rendering.
type Snapshot struct {
	Projectiles []Rect
	Entities    []Entity
	Player      Rect
	State       State
	Score       int
	HighScore   int
	Level       int
}

// Snapshot returns the current state. Only living entities are included.
func (e *Engine) Snapshot() Snapshot {
	living := make([]Entity, 0, len(e.entities))

	for _, en := range e.entities {
		if en.Alive {
			living = append(living, en)
		}
	}

	return Snapshot{
		State:       e.state,
		Player:      e.player,
		Projectiles: slices.Clone(e.projectiles),
		Entities:    living,
		Score:       e.score,
		HighScore:   e.highScore,
		Level:       e.level,
	}
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// HighScore returns the best score so far.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Level returns the current wave number.
func (e *Engine) Level() int {
	return e.level
}

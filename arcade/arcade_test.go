package arcade

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/ecofocus/internal/clock"
	"github.com/ayoisaiah/ecofocus/store"
)

type fakeHost struct {
	enabled bool
	running bool
	starts  int
}

func (h *fakeHost) GameEnabled() bool { return h.enabled }
func (h *fakeHost) Running() bool     { return h.running }

func (h *fakeHost) Start() {
	h.starts++
	h.running = true
}

func newEngine(
	t *testing.T,
	db store.DB,
	opts ...Option,
) (*Engine, *fakeHost, *clock.Manual) {
	t.Helper()

	host := &fakeHost{enabled: true}
	frames := &clock.Manual{}

	opts = append([]Option{WithRand(rand.New(rand.NewPCG(1, 2)))}, opts...)

	return New(db, host, frames, opts...), host, frames
}

func TestInit(t *testing.T) {
	e, _, frames := newEngine(t, store.NewMemory())

	e.score = 120
	e.level = 3
	e.projectiles = []Rect{{X: 1, Y: 1, W: 6, H: 10}}
	e.player.X = 0

	e.Init()

	snap := e.Snapshot()

	assert.Equal(t, Idle, snap.State)
	assert.Zero(t, snap.Score)
	assert.Equal(t, 1, snap.Level)
	assert.Empty(t, snap.Projectiles)
	assert.Len(t, snap.Entities, 32)
	assert.Equal(t, Rect{X: 280, Y: 360, W: 30, H: 20}, snap.Player)
	assert.False(t, frames.Active())
}

func TestStartLoopRequiresBreak(t *testing.T) {
	e, host, frames := newEngine(t, store.NewMemory())
	host.enabled = false

	assert.False(t, e.StartLoop())

	e.Fire()

	assert.Equal(t, Idle, e.State())
	assert.Zero(t, host.starts)
	assert.False(t, frames.Active())
}

func TestStartLoopStartsCountdown(t *testing.T) {
	e, host, frames := newEngine(t, store.NewMemory())

	require.True(t, e.StartLoop())

	assert.Equal(t, Running, e.State())
	assert.True(t, frames.Active())
	assert.Equal(t, 1, host.starts)

	e.Stop()
	require.True(t, e.StartLoop())

	assert.Equal(t, 1, host.starts, "a running countdown is not restarted")
}

func TestFire(t *testing.T) {
	e, _, _ := newEngine(t, store.NewMemory())

	e.Fire()
	require.Equal(t, Running, e.State())
	assert.Empty(t, e.Snapshot().Projectiles, "the first press only starts the game")

	e.Fire()

	assert.Equal(
		t,
		[]Rect{{X: 292, Y: 360, W: 6, H: 10}},
		e.Snapshot().Projectiles,
	)
}

func TestStopKeepsState(t *testing.T) {
	e, _, frames := newEngine(t, store.NewMemory())

	e.StartLoop()
	e.Fire()

	for range 3 {
		e.Frame()
	}

	e.Stop()

	assert.Equal(t, Stopped, e.State())
	assert.False(t, frames.Active())
	assert.Equal(t, 3, e.frame)
	assert.Len(t, e.projectiles, 1)

	e.Frame()
	assert.Equal(t, 3, e.frame, "a stopped game does not advance")
}

func TestFrameStopsWhenBreakEnds(t *testing.T) {
	e, host, _ := newEngine(t, store.NewMemory())

	e.StartLoop()
	host.enabled = false

	e.Frame()

	assert.Equal(t, Stopped, e.State())
	assert.Zero(t, e.frame)
}

func TestPlayerMovement(t *testing.T) {
	e, _, _ := newEngine(t, store.NewMemory())

	e.Press(Left)

	for range 100 {
		e.Update()
	}

	assert.InDelta(t, 0, e.player.X, 1e-9, "player is clamped to the left edge")

	e.Release(Left)
	e.Press(Right)

	for range 200 {
		e.Update()
	}

	assert.InDelta(t, FieldWidth-PlayerWidth, e.player.X, 1e-9)
}

func TestHoldFrames(t *testing.T) {
	e, _, _ := newEngine(t, store.NewMemory(), WithHoldFrames(3))

	e.Press(Right)

	for range 10 {
		e.Update()
	}

	assert.InDelta(t, 280+3*PlayerSpeed, e.player.X, 1e-9)
}

func TestProjectileLeavesField(t *testing.T) {
	e, _, _ := newEngine(t, store.NewMemory())
	e.entities = nil
	e.projectiles = []Rect{{X: 10, Y: 5, W: 6, H: 10}}

	e.moveProjectiles()

	assert.Empty(t, e.projectiles)
}

func TestCollision(t *testing.T) {
	e, _, _ := newEngine(t, store.NewMemory())

	target := newEntity(98, 45)
	bystander := newEntity(400, 45)

	e.entities = []Entity{target, bystander}
	e.projectiles = []Rect{{X: 100, Y: 50, W: 6, H: 10}}

	e.collide()

	assert.False(t, e.entities[0].Alive)
	assert.True(t, e.entities[1].Alive)
	assert.Equal(t, 10, e.score)
	assert.Empty(t, e.projectiles)
}

func TestProjectileDestroysOneEntity(t *testing.T) {
	e, _, _ := newEngine(t, store.NewMemory())

	e.entities = []Entity{newEntity(98, 45), newEntity(100, 48)}
	e.projectiles = []Rect{{X: 100, Y: 50, W: 6, H: 10}}

	e.collide()

	assert.False(t, e.entities[0].Alive)
	assert.True(t, e.entities[1].Alive)
	assert.Equal(t, HitScore, e.score)
}

func TestCollisionDuringUpdate(t *testing.T) {
	db := store.NewMemory()
	e, _, _ := newEngine(t, db)

	e.entities = []Entity{newEntity(98, 45), newEntity(400, 200)}
	e.projectiles = []Rect{{X: 100, Y: 50, W: 6, H: 10}}

	e.Update()

	snap := e.Snapshot()

	assert.Equal(t, 10, snap.Score)
	assert.Equal(t, 10, snap.HighScore)
	assert.Empty(t, snap.Projectiles)
	assert.Len(t, snap.Entities, 1)

	hs, err := store.Int(db, store.KeyGameHighScore, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, hs)
}

func TestWaveClear(t *testing.T) {
	db := store.NewMemory()
	e, _, _ := newEngine(t, db)

	require.Len(t, e.entities, 32)

	for i := range e.entities {
		e.entities[i].Alive = false
	}

	e.Update()

	assert.Equal(t, 2, e.level)
	assert.Equal(t, WaveBonus, e.score)
	assert.Len(t, e.entities, 25)
	assert.InDelta(t, 3.0, e.baseSpeed, 1e-9)

	hs, err := store.Int(db, store.KeyGameHighScore, 0)
	require.NoError(t, err)
	assert.Equal(t, WaveBonus, hs)
}

func TestHighScoreLoadedAndKept(t *testing.T) {
	db := store.NewMemory()
	require.NoError(t, store.SetInt(db, store.KeyGameHighScore, 500))

	e, _, _ := newEngine(t, db)

	assert.Equal(t, 500, e.HighScore())

	e.addScore(HitScore)

	assert.Equal(t, 500, e.HighScore())

	hs, err := store.Int(db, store.KeyGameHighScore, 0)
	require.NoError(t, err)
	assert.Equal(t, 500, hs)
}

func TestDiveTrigger(t *testing.T) {
	e, _, _ := newEngine(t, store.NewMemory())

	divers := func() int {
		n := 0

		for _, en := range e.entities {
			if en.Behaviour == Diving {
				n++
			}
		}

		return n
	}

	for range diveInterval - 1 {
		e.Update()
	}

	assert.Zero(t, divers())

	e.Update()

	assert.Equal(t, 1, divers())
}

func TestDiverReturnsToFormation(t *testing.T) {
	e, _, _ := newEngine(t, store.NewMemory())

	diver := newEntity(300, 395)
	diver.Behaviour = Diving
	e.entities = []Entity{diver, newEntity(50, 30)}
	e.player.X = 100

	e.moveEntities()

	got := e.entities[0]

	assert.Equal(t, Formation, got.Behaviour)
	assert.Zero(t, got.Y)
	assert.InDelta(t, 299, got.X, 1e-9, "divers drift toward the player")
}

func TestFormationDirection(t *testing.T) {
	e, _, _ := newEngine(t, store.NewMemory())

	e.frame = 199
	assert.InDelta(t, 1, e.direction(), 1e-9)

	e.frame = 200
	assert.InDelta(t, -1, e.direction(), 1e-9)

	e.frame = 400
	assert.InDelta(t, 1, e.direction(), 1e-9)
}

package breathing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/ecofocus/internal/breathing"
)

func TestPhaseAt(t *testing.T) {
	testCases := []struct {
		Elapsed time.Duration
		Want    string
	}{
		{0, "Breathe In"},
		{4999 * time.Millisecond, "Breathe In"},
		{5 * time.Second, "Hold"},
		{7 * time.Second, "Hold"},
		{8 * time.Second, "Breathe Out"},
		{12 * time.Second, "Breathe Out"},
		{13 * time.Second, "Breathe In"},
		{13*time.Second*100 + 6*time.Second, "Hold"},
	}

	for _, tc := range testCases {
		t.Run(tc.Elapsed.String(), func(t *testing.T) {
			phase, _ := breathing.PhaseAt(tc.Elapsed)
			assert.Equal(t, tc.Want, phase.Label)
		})
	}
}

func TestCycleDuration(t *testing.T) {
	assert.Equal(t, 13*time.Second, breathing.CycleDuration)
}

func TestPacer(t *testing.T) {
	now := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	p := breathing.New(clock)

	assert.Equal(t, breathing.ReadyLabel, p.Label())
	assert.Zero(t, p.Progress())

	p.Start()
	assert.True(t, p.Active())
	assert.Equal(t, "Breathe In", p.Label())

	now = now.Add(2500 * time.Millisecond)
	assert.InDelta(t, 0.5, p.Progress(), 1e-9)

	now = now.Add(3 * time.Second)
	assert.Equal(t, "Hold", p.Label())
	assert.InDelta(t, 1, p.Progress(), 1e-9)

	now = now.Add(5 * time.Second)
	assert.Equal(t, "Breathe Out", p.Label())
	assert.InDelta(t, 0.5, p.Progress(), 1e-9)

	p.Stop()
	assert.False(t, p.Active())
	assert.Equal(t, breathing.ReadyLabel, p.Label())

	p.Start()
	assert.Equal(t, "Breathe In", p.Label(), "starting again restarts the cycle")
}

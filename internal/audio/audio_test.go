package audio

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeOutput struct {
	playErr error
	played  []beep.Streamer
	mu      sync.Mutex
	closed  bool
}

func (f *fakeOutput) Play(s beep.Streamer) error {
	if f.playErr != nil {
		return f.playErr
	}

	f.played = append(f.played, s)

	return nil
}

func (f *fakeOutput) Lock()   { f.mu.Lock() }
func (f *fakeOutput) Unlock() { f.mu.Unlock() }

func (f *fakeOutput) Close() error {
	f.closed = true
	return nil
}

func newTestMixer(t *testing.T, level float64) (*Mixer, *fakeOutput) {
	t.Helper()

	out := &fakeOutput{}
	m := New(level, WithOutput(out), WithFade(0.25, time.Millisecond))

	t.Cleanup(func() {
		require.NoError(t, m.Close())
		goleak.VerifyNone(t)
	})

	return m, out
}

func TestToggle(t *testing.T) {
	m, out := newTestMixer(t, 0.5)

	playing, err := m.Toggle("rain")
	require.NoError(t, err)
	assert.True(t, playing)
	assert.True(t, m.Playing("rain"))
	assert.False(t, m.channels["rain"].ctrl.Paused)
	assert.Len(t, out.played, 1)

	playing, err = m.Toggle("rain")
	require.NoError(t, err)
	assert.False(t, playing)
	assert.True(t, m.channels["rain"].ctrl.Paused)

	_, err = m.Toggle("rain")
	require.NoError(t, err)
	assert.Len(t, out.played, 1, "a channel is attached to the output once")

	assert.Equal(t, []string{"rain"}, m.Active())
}

func TestToggleUnknownChannel(t *testing.T) {
	m, _ := newTestMixer(t, 0.5)

	_, err := m.Toggle("thunder")
	assert.Error(t, err)
	assert.False(t, Known("thunder"))
	assert.True(t, Known("brown"))
}

func TestToggleOutputFailure(t *testing.T) {
	m, out := newTestMixer(t, 0.5)
	out.playErr = errors.New("no audio device")

	playing, err := m.Toggle("birds")

	assert.Error(t, err)
	assert.False(t, playing)
	assert.False(t, m.Playing("birds"))
}

func TestSetVolume(t *testing.T) {
	m, _ := newTestMixer(t, 0.5)

	require.NoError(t, m.SetVolume("water", 0.25))

	ch := m.channels["water"]
	assert.InDelta(t, 0.25, m.Level("water"), 1e-9)
	assert.InDelta(t, -2, ch.vol.Volume, 1e-9)
	assert.False(t, ch.vol.Silent)

	require.NoError(t, m.SetVolume("water", 0))
	assert.True(t, ch.vol.Silent)

	require.NoError(t, m.SetVolume("water", 3))
	assert.InDelta(t, 1, m.Level("water"), 1e-9)
	assert.InDelta(t, 0, ch.vol.Volume, 1e-9)
}

func TestStopAllSound(t *testing.T) {
	m, _ := newTestMixer(t, 0.5)

	require.NoError(t, m.Play("forest"))
	require.NoError(t, m.Play("brown"))
	require.NoError(t, m.SetVolume("brown", 0.8))

	m.StopAllSound()
	assert.True(t, m.Fading())

	m.StopAllSound()
	m.Wait()

	assert.False(t, m.Fading())
	assert.Empty(t, m.Active())

	for _, name := range []string{"forest", "brown"} {
		ch := m.channels[name]
		assert.True(t, ch.ctrl.Paused)
		assert.False(t, ch.fading)
	}

	assert.InDelta(t, 0.8, m.Level("brown"), 1e-9, "slider level is restored")
	assert.InDelta(t, 0.8, m.channels["brown"].current, 1e-9)
	assert.InDelta(t, 0.5, m.channels["forest"].current, 1e-9)
}

func TestStopAllSoundWithoutPlayingChannels(t *testing.T) {
	m, _ := newTestMixer(t, 0.5)

	m.StopAllSound()

	assert.False(t, m.Fading())
}

func TestSetVolumeIgnoredWhileFading(t *testing.T) {
	m, _ := newTestMixer(t, 0.5)
	m.fadeInterval = time.Hour

	require.NoError(t, m.Play("brown"))

	m.StopAllSound()
	require.True(t, m.Fading())

	require.NoError(t, m.SetVolume("brown", 0.1))

	assert.InDelta(t, 0.5, m.Level("brown"), 1e-9)
}

func TestToggleDuringFade(t *testing.T) {
	m, _ := newTestMixer(t, 1)
	m.fadeInterval = time.Hour

	require.NoError(t, m.Play("rain"))

	m.StopAllSound()
	require.True(t, m.Fading())

	playing, err := m.Toggle("rain")
	require.NoError(t, err)
	assert.False(t, playing, "toggling a fading channel stops it")
}

func TestFadeStep(t *testing.T) {
	m, _ := newTestMixer(t, 0.5)

	require.NoError(t, m.Play("forest"))

	ch := m.channels["forest"]
	ch.fading = true
	active := []*channel{ch}

	assert.False(t, m.fadeStepDone(active))
	assert.InDelta(t, 0.25, ch.current, 1e-9)
	assert.True(t, ch.playing)

	// a level at or below the step drops to silence and ends the fade
	assert.True(t, m.fadeStepDone(active))
	assert.False(t, ch.playing)
	assert.True(t, ch.ctrl.Paused)
	assert.InDelta(t, 0.5, ch.current, 1e-9)
}

func TestFindSound(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"rain10.ogg", "rain2.mp3", "rain.txt", "forest.wav", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	assert.Equal(t, filepath.Join(dir, "rain2.mp3"), findSound(dir, "rain"))
	assert.Equal(t, filepath.Join(dir, "forest.wav"), findSound(dir, "forest"))
	assert.Empty(t, findSound(dir, "birds"))
	assert.Empty(t, findSound(filepath.Join(dir, "missing"), "rain"))
	assert.Empty(t, findSound("", "rain"))
}

func TestUndecodableFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rain.ogg"), []byte("not audio"), 0o644))

	out := &fakeOutput{}
	m := New(0.5, WithOutput(out), WithSoundsDir(dir))

	defer func() {
		require.NoError(t, m.Close())
	}()

	assert.Nil(t, m.channels["rain"].source)

	playing, err := m.Toggle("rain")
	require.NoError(t, err)
	assert.True(t, playing)
}

func TestSynthesizedStreams(t *testing.T) {
	m, _ := newTestMixer(t, 0.5)

	for _, name := range Channels {
		t.Run(name, func(t *testing.T) {
			s := synthesize(name, m.rng)

			samples := make([][2]float64, 4096)
			n, ok := s.Stream(samples)

			assert.True(t, ok)
			assert.Equal(t, len(samples), n)

			for _, smp := range samples {
				assert.Equal(t, smp[0], smp[1])
			}
		})
	}
}

// Package audio mixes the ambient sound channels
package audio

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/maruel/natural"

	"github.com/ayoisaiah/ecofocus/internal/apperr"
	"github.com/ayoisaiah/ecofocus/internal/pathutil"
)

// SampleRate is the rate every channel is mixed at.
const SampleRate beep.SampleRate = 44100

// Channels lists the ambient sound channels in display order.
var Channels = []string{"forest", "rain", "birds", "water", "brown"}

const (
	DefaultFadeStep     = 0.05
	DefaultFadeInterval = 100 * time.Millisecond
	resampleQuality     = 4
)

var (
	errUnknownChannel = &apperr.Error{
		Message: "unknown sound channel: %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "unsupported sound format: %s",
	}
)

// Output plays mixed streams. Streamer state may only be changed while the
// output is locked.
type Output interface {
	Play(s beep.Streamer) error
	Lock()
	Unlock()
	Close() error
}

// speakerOutput plays through the system audio device. The device is opened
// on first use so that commands which never play sound don't need one.
type speakerOutput struct {
	err  error
	once sync.Once
	open bool
}

func (s *speakerOutput) Play(st beep.Streamer) error {
	s.once.Do(func() {
		s.err = speaker.Init(SampleRate, SampleRate.N(time.Second/10))
		s.open = s.err == nil
	})

	if s.err != nil {
		return s.err
	}

	speaker.Play(st)

	return nil
}

func (s *speakerOutput) Lock() {
	speaker.Lock()
}

func (s *speakerOutput) Unlock() {
	speaker.Unlock()
}

func (s *speakerOutput) Close() error {
	if s.open {
		speaker.Close()
	}

	return nil
}

type channel struct {
	source   beep.StreamSeeker
	closer   io.Closer
	ctrl     *beep.Ctrl
	vol      *effects.Volume
	name     string
	level    float64
	current  float64
	playing  bool
	fading   bool
	attached bool
}

// Mixer owns the ambient channels. It is safe for concurrent use.
type Mixer struct {
	out          Output
	channels     map[string]*channel
	closed       chan struct{}
	rng          *rand.Rand
	dir          string
	wg           sync.WaitGroup
	fadeInterval time.Duration
	fadeStep     float64
	mu           sync.Mutex
	fadeActive   bool
}

// Option configures a Mixer.
type Option func(*Mixer)

// WithOutput replaces the system speaker.
func WithOutput(out Output) Option {
	return func(m *Mixer) {
		m.out = out
	}
}

// WithFade changes how fast StopAllSound fades channels out.
func WithFade(step float64, interval time.Duration) Option {
	return func(m *Mixer) {
		m.fadeStep = step
		m.fadeInterval = interval
	}
}

// WithSoundsDir sets the directory searched for channel sound files.
func WithSoundsDir(dir string) Option {
	return func(m *Mixer) {
		m.dir = dir
	}
}

// New returns a mixer with every channel stopped at level.
func New(level float64, opts ...Option) *Mixer {
	m := &Mixer{
		out:          &speakerOutput{},
		channels:     make(map[string]*channel, len(Channels)),
		closed:       make(chan struct{}),
		fadeStep:     DefaultFadeStep,
		fadeInterval: DefaultFadeInterval,
	}

	for _, opt := range opts {
		opt(m)
	}

	seed := uint64(time.Now().UnixNano())
	m.rng = rand.New(rand.NewPCG(seed, seed>>32))

	level = clampLevel(level)

	for _, name := range Channels {
		ch := &channel{
			name:    name,
			level:   level,
			current: level,
		}

		ch.ctrl = &beep.Ctrl{Streamer: m.load(ch), Paused: true}
		ch.vol = &effects.Volume{Streamer: ch.ctrl, Base: 2}
		applyVolume(ch)

		m.channels[name] = ch
	}

	return m
}

// load returns the stream of ch: a sound file from the sounds directory or
// a synthesized fallback.
func (m *Mixer) load(ch *channel) beep.Streamer {
	path := findSound(m.dir, ch.name)
	if path != "" {
		stream, format, err := decode(path)
		if err == nil {
			ch.source = stream
			ch.closer = stream

			var s beep.Streamer = beep.Loop(-1, stream)
			if format.SampleRate != SampleRate {
				s = beep.Resample(resampleQuality, format.SampleRate, SampleRate, s)
			}

			return s
		}

		slog.Warn(
			"unable to decode sound file, using synthesized sound",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}

	return synthesize(ch.name, m.rng)
}

func supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".ogg", ".mp3", ".flac", ".wav":
		return true
	}

	return false
}

// findSound returns the first file in dir, in natural order, whose name
// starts with the channel name and has a supported extension.
func findSound(dir, name string) string {
	if dir == "" {
		return ""
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("unable to read sounds directory", slog.Any("error", err))
		}

		return ""
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() || !supported(filepath.Ext(e.Name())) {
			continue
		}

		base := strings.ToLower(pathutil.StripExtension(e.Name()))
		if strings.HasPrefix(base, name) {
			names = append(names, e.Name())
		}
	}

	if len(names) == 0 {
		return ""
	}

	sort.Sort(natural.StringSlice(names))

	return filepath.Join(dir, names[0])
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		err = errInvalidSoundFormat.Fmt(ext)
	}

	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, err
	}

	return stream, format, nil
}

func clampLevel(level float64) float64 {
	return math.Min(math.Max(level, 0), 1)
}

// applyVolume maps the linear level onto the logarithmic volume effect. The
// output must be locked unless ch is not attached yet.
func applyVolume(ch *channel) {
	if ch.current <= 0 {
		ch.vol.Silent = true
		ch.vol.Volume = 0

		return
	}

	ch.vol.Silent = false
	ch.vol.Volume = math.Log2(ch.current)
}

func (m *Mixer) get(name string) (*channel, error) {
	ch, ok := m.channels[name]
	if !ok {
		return nil, errUnknownChannel.Fmt(name)
	}

	return ch, nil
}

// apply pushes the channel state to its streamers.
func (m *Mixer) apply(ch *channel) {
	m.out.Lock()
	defer m.out.Unlock()

	ch.ctrl.Paused = !ch.playing
	applyVolume(ch)
}

func (m *Mixer) rewind(ch *channel) {
	if ch.source == nil {
		return
	}

	m.out.Lock()
	defer m.out.Unlock()

	err := ch.source.Seek(0)
	if err != nil {
		slog.Warn("unable to rewind sound", slog.String("channel", ch.name), slog.Any("error", err))
	}
}

func (m *Mixer) start(ch *channel) error {
	if !ch.attached {
		err := m.out.Play(ch.vol)
		if err != nil {
			return err
		}

		ch.attached = true
	}

	ch.playing = true
	ch.fading = false
	ch.current = ch.level
	m.apply(ch)

	return nil
}

func (m *Mixer) stop(ch *channel) {
	ch.playing = false
	ch.fading = false
	ch.current = ch.level
	m.apply(ch)
	m.rewind(ch)
}

// Toggle starts a stopped channel or stops a playing one. It returns
// whether the channel is now playing.
func (m *Mixer) Toggle(name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch, err := m.get(name)
	if err != nil {
		return false, err
	}

	if ch.playing {
		m.stop(ch)
		return false, nil
	}

	err = m.start(ch)

	return ch.playing, err
}

// Play starts a channel if it isn't playing.
func (m *Mixer) Play(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch, err := m.get(name)
	if err != nil {
		return err
	}

	if ch.playing && !ch.fading {
		return nil
	}

	return m.start(ch)
}

// SetVolume sets the slider level of a channel, from 0 to 1. It is ignored
// while the channel fades out.
func (m *Mixer) SetVolume(name string, level float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch, err := m.get(name)
	if err != nil {
		return err
	}

	if ch.fading {
		return nil
	}

	ch.level = clampLevel(level)
	ch.current = ch.level
	m.apply(ch)

	return nil
}

// Level returns the slider level of a channel.
func (m *Mixer) Level(name string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch, err := m.get(name)
	if err != nil {
		return 0
	}

	return ch.level
}

// Playing reports whether a channel is audible (including while fading).
func (m *Mixer) Playing(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch, err := m.get(name)
	if err != nil {
		return false
	}

	return ch.playing
}

// Fading reports whether a fade out is in progress.
func (m *Mixer) Fading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.fadeActive
}

// StopAllSound fades out every playing channel, then stops and rewinds it
// and restores its slider level. Calls made while a fade is in progress do
// nothing.
func (m *Mixer) StopAllSound() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fadeActive {
		return
	}

	var active []*channel

	for _, name := range Channels {
		ch := m.channels[name]
		if ch.playing {
			ch.fading = true
			active = append(active, ch)
		}
	}

	if len(active) == 0 {
		return
	}

	m.fadeActive = true

	m.wg.Add(1)

	go m.fade(active)
}

func (m *Mixer) fade(active []*channel) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.fadeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.closed:
			return
		case <-ticker.C:
		}

		if m.fadeStepDone(active) {
			return
		}
	}
}

// fadeStepDone lowers every fading channel by one step. Once all of them
// are silent they are stopped and it reports true.
func (m *Mixer) fadeStepDone(active []*channel) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	stillFading := false

	for _, ch := range active {
		if !ch.fading {
			continue
		}

		if ch.current > m.fadeStep {
			ch.current -= m.fadeStep
			stillFading = true
		} else {
			ch.current = 0
		}

		m.apply(ch)
	}

	if stillFading {
		return false
	}

	for _, ch := range active {
		if ch.fading {
			m.stop(ch)
		}
	}

	m.fadeActive = false

	return true
}

// Wait blocks until a running fade completes.
func (m *Mixer) Wait() {
	m.wg.Wait()
}

// Active returns the names of the playing channels.
func (m *Mixer) Active() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var names []string

	for _, name := range Channels {
		if m.channels[name].playing {
			names = append(names, name)
		}
	}

	return names
}

// Close abandons any fade in progress and releases the sound files and the
// audio device.
func (m *Mixer) Close() error {
	select {
	case <-m.closed:
		return nil
	default:
		close(m.closed)
	}

	m.wg.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error

	for _, ch := range m.channels {
		if ch.closer != nil {
			errs = append(errs, ch.closer.Close())
		}
	}

	errs = append(errs, m.out.Close())

	return errors.Join(errs...)
}

// Known reports whether name is a sound channel.
func Known(name string) bool {
	return slices.Contains(Channels, name)
}

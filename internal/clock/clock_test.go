package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTeaAcceptsCurrentGeneration(t *testing.T) {
	s := NewTea("countdown", time.Second)

	assert.Nil(t, s.Cmd(), "stopped scheduler must not tick")

	s.Start()
	assert.True(t, s.Active())
	assert.NotNil(t, s.Cmd())
	assert.Nil(t, s.Cmd(), "only one tick may be in flight")

	msg := TickMsg{Name: "countdown", Gen: s.gen}
	assert.True(t, s.Accept(msg))
	assert.NotNil(t, s.Cmd())
}

func TestTeaDropsStaleTicks(t *testing.T) {
	s := NewTea("countdown", time.Second)

	s.Start()
	stale := TickMsg{Name: "countdown", Gen: s.gen}

	s.Stop()
	assert.False(t, s.Accept(stale))
	assert.Nil(t, s.Cmd())

	s.Start()
	assert.False(t, s.Accept(stale), "tick from an earlier run must be ignored")
	assert.True(t, s.Accept(TickMsg{Name: "countdown", Gen: s.gen}))
}

func TestTeaIgnoresOtherSchedulers(t *testing.T) {
	countdown := NewTea("countdown", time.Second)
	frame := NewTea("frame", time.Second/60)

	countdown.Start()
	frame.Start()

	assert.False(t, countdown.Accept(TickMsg{Name: "frame", Gen: frame.gen}))
}

func TestManual(t *testing.T) {
	var m Manual

	m.Start()
	m.Start()
	m.Stop()

	assert.False(t, m.Active())
	assert.Equal(t, 2, m.Starts)
	assert.Equal(t, 1, m.Stops)
}

func TestTeaMsg(t *testing.T) {
	s := NewTea("frame", time.Second/60)
	s.Start()

	assert.True(t, s.Accept(s.Msg(time.Now())))

	stale := s.Msg(time.Now())
	s.Start()
	assert.False(t, s.Accept(stale))
}

package store

import "errors"

// ErrWriteFailed is returned by a Memory store with FailWrites set.
var ErrWriteFailed = errors.New("write failed: storage unavailable")

// Memory is a DB held in process memory. It backs tests and can simulate a
// full or unavailable store.
type Memory struct {
	data       map[string]string
	FailWrites bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]string),
	}
}

func (m *Memory) Get(key string) (string, error) {
	return m.data[key], nil
}

func (m *Memory) Set(key, value string) error {
	if m.FailWrites {
		return ErrWriteFailed
	}

	m.data[key] = value

	return nil
}

func (m *Memory) Delete(key string) error {
	if m.FailWrites {
		return ErrWriteFailed
	}

	delete(m.data, key)

	return nil
}

func (m *Memory) Close() error {
	return nil
}

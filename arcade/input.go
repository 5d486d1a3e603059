package arcade

// Key is a steering input.
type Key int

const (
	Left Key = iota
	Right
)

// held tracks steering keys. Terminals rarely report key releases, so a key
// pressed with a positive hold window releases itself once the window
// elapses without a repeat press.
type held struct {
	frames map[Key]int
	window int
}

func newHeld(window int) held {
	return held{
		frames: make(map[Key]int),
		window: window,
	}
}

func (h held) press(k Key) {
	if h.window <= 0 {
		h.frames[k] = -1
		return
	}

	h.frames[k] = h.window
}

func (h held) release(k Key) {
	delete(h.frames, k)
}

func (h held) down(k Key) bool {
	_, ok := h.frames[k]
	return ok
}

// advance ages every timed key by one frame.
func (h held) advance() {
	for k, n := range h.frames {
		if n < 0 {
			continue
		}

		if n <= 1 {
			delete(h.frames, k)
			continue
		}

		h.frames[k] = n - 1
	}
}

func (h held) clear() {
	clear(h.frames)
}

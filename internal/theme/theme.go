// Package theme selects and persists the light or dark colour scheme
package theme

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/ecofocus/internal/apperr"
	"github.com/ayoisaiah/ecofocus/store"
)

// Theme is a colour scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// daylight hours [start, end) get the light theme by default
const (
	dayStart = 6
	dayEnd   = 18
)

var errInvalidTheme = &apperr.Error{
	Message: "invalid theme %q: use light or dark",
}

// Parse validates a theme name.
func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	default:
		return "", errInvalidTheme.Fmt(s)
	}
}

// ForTime returns the default theme for the local time of day.
func ForTime(now time.Time) Theme {
	if h := now.Hour(); h >= dayStart && h < dayEnd {
		return Light
	}

	return Dark
}

// Switcher holds the active theme.
type Switcher struct {
	db      store.DB
	current Theme
}

// Init returns a switcher with the saved theme, or the default for now if
// none was saved.
func Init(db store.DB, now time.Time) *Switcher {
	s := &Switcher{
		db:      db,
		current: ForTime(now),
	}

	saved, err := db.Get(store.KeyTheme)
	if err != nil {
		slog.Warn("unable to read theme", slog.Any("error", err))
		return s
	}

	if t, err := Parse(saved); err == nil {
		s.current = t
	}

	return s
}

func (s *Switcher) Current() Theme {
	return s.current
}

// Dark reports whether the dark theme is active.
func (s *Switcher) Dark() bool {
	return s.current == Dark
}

// Set activates and persists t.
func (s *Switcher) Set(t Theme) {
	s.current = t

	err := s.db.Set(store.KeyTheme, string(t))
	if err != nil {
		slog.Warn("unable to persist theme", slog.Any("error", err))
	}
}

// Toggle switches between light and dark.
func (s *Switcher) Toggle() Theme {
	if s.current == Dark {
		s.Set(Light)
	} else {
		s.Set(Dark)
	}

	return s.current
}

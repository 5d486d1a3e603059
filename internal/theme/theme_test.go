package theme_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/ecofocus/internal/theme"
	"github.com/ayoisaiah/ecofocus/store"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.June, 1, hour, minute, 0, 0, time.Local)
}

func TestForTime(t *testing.T) {
	testCases := []struct {
		Time time.Time
		Want theme.Theme
	}{
		{at(5, 59), theme.Dark},
		{at(6, 0), theme.Light},
		{at(12, 0), theme.Light},
		{at(17, 59), theme.Light},
		{at(18, 0), theme.Dark},
		{at(23, 30), theme.Dark},
	}

	for _, tc := range testCases {
		t.Run(tc.Time.Format("15:04"), func(t *testing.T) {
			assert.Equal(t, tc.Want, theme.ForTime(tc.Time))
		})
	}
}

func TestInitPrefersSavedTheme(t *testing.T) {
	db := store.NewMemory()
	require.NoError(t, db.Set(store.KeyTheme, "dark"))

	s := theme.Init(db, at(12, 0))

	assert.Equal(t, theme.Dark, s.Current())
}

func TestInitIgnoresInvalidTheme(t *testing.T) {
	db := store.NewMemory()
	require.NoError(t, db.Set(store.KeyTheme, "sepia"))

	s := theme.Init(db, at(20, 0))

	assert.Equal(t, theme.Dark, s.Current())
}

func TestToggle(t *testing.T) {
	db := store.NewMemory()
	s := theme.Init(db, at(9, 0))

	require.Equal(t, theme.Light, s.Current())

	assert.Equal(t, theme.Dark, s.Toggle())
	assert.True(t, s.Dark())

	saved, err := db.Get(store.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", saved)

	assert.Equal(t, theme.Light, s.Toggle())
}

func TestParse(t *testing.T) {
	got, err := theme.Parse("light")
	require.NoError(t, err)
	assert.Equal(t, theme.Light, got)

	_, err = theme.Parse("blue")
	assert.Error(t, err)
}

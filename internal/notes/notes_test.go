package notes_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/ecofocus/internal/models"
	"github.com/ayoisaiah/ecofocus/internal/notes"
	"github.com/ayoisaiah/ecofocus/store"
)

var now = time.UnixMilli(1709542800000)

func clock() time.Time {
	return now
}

func TestAdd(t *testing.T) {
	db := store.NewMemory()
	b := notes.Load(db, clock)

	first, err := b.Add("")
	require.NoError(t, err)

	second, err := b.Add("#80d8ff")
	require.NoError(t, err)

	assert.Equal(t, models.Note{ID: 1709542800000, Color: notes.DefaultColor, X: 100, Y: 100}, first)
	assert.Equal(t, models.Note{ID: 1709542800001, Color: "#80d8ff", X: 120, Y: 120}, second)

	reloaded := notes.Load(db, clock)
	assert.Equal(t, []models.Note{first, second}, reloaded.List())
}

func TestUpdateAndMove(t *testing.T) {
	db := store.NewMemory()
	b := notes.Load(db, clock)

	n, err := b.Add("")
	require.NoError(t, err)

	require.NoError(t, b.Update(n.ID, "water the plants"))
	require.NoError(t, b.Move(n.ID, 40, 250))

	got := notes.Load(db, clock).List()
	require.Len(t, got, 1)
	assert.Equal(t, "water the plants", got[0].Content)
	assert.Equal(t, 40, got[0].X)
	assert.Equal(t, 250, got[0].Y)
}

func TestDelete(t *testing.T) {
	db := store.NewMemory()
	b := notes.Load(db, clock)

	n, err := b.Add("")
	require.NoError(t, err)

	require.NoError(t, b.Delete(n.ID))

	assert.Empty(t, b.List())

	s, err := db.Get(store.KeyStickyNotes)
	require.NoError(t, err)
	assert.Equal(t, "[]", s)
}

func TestUnknownNote(t *testing.T) {
	b := notes.Load(store.NewMemory(), clock)

	assert.Error(t, b.Update(42, "x"))
	assert.Error(t, b.Move(42, 0, 0))
	assert.Error(t, b.Delete(42))
}

func TestLoadCorruptedNotes(t *testing.T) {
	db := store.NewMemory()
	require.NoError(t, db.Set(store.KeyStickyNotes, "{not json"))

	b := notes.Load(db, clock)

	assert.Empty(t, b.List())
}

func TestAddPersistenceFailure(t *testing.T) {
	db := store.NewMemory()
	db.FailWrites = true

	b := notes.Load(db, clock)

	_, err := b.Add("")

	assert.True(t, errors.Is(err, store.ErrWriteFailed))
}

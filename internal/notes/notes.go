// Package notes manages the sticky notes board
package notes

import (
	"log/slog"
	"slices"
	"time"

	"github.com/ayoisaiah/ecofocus/internal/apperr"
	"github.com/ayoisaiah/ecofocus/internal/models"
	"github.com/ayoisaiah/ecofocus/store"
)

// DefaultColor is the colour of a note created without one.
const DefaultColor = "#ffeb3b"

// Palette lists the colours offered when creating a note.
var Palette = []string{DefaultColor, "#ff8a80", "#80d8ff", "#ccff90", "#ea80fc"}

const (
	baseOffset = 100
	cascade    = 20
)

var errNoteNotFound = &apperr.Error{
	Message: "note with id %d not found",
}

// Board is the set of sticky notes. Every change is persisted immediately.
type Board struct {
	db    store.DB
	now   func() time.Time
	notes []models.Note
}

// Load reads the board from db. Unreadable notes yield an empty board. A nil
// now uses time.Now.
func Load(db store.DB, now func() time.Time) *Board {
	if now == nil {
		now = time.Now
	}

	b := &Board{
		db:  db,
		now: now,
	}

	err := store.JSON(db, store.KeyStickyNotes, &b.notes)
	if err != nil {
		slog.Warn("unable to read sticky notes", slog.Any("error", err))
		b.notes = nil
	}

	return b
}

// List returns a copy of the notes in creation order.
func (b *Board) List() []models.Note {
	return slices.Clone(b.notes)
}

// Add creates an empty note. New notes cascade from the top left so they
// don't cover each other.
func (b *Board) Add(color string) (models.Note, error) {
	if color == "" {
		color = DefaultColor
	}

	id := b.now().UnixMilli()

	// ids must stay unique when notes are added within the same millisecond
	for _, n := range b.notes {
		if n.ID >= id {
			id = n.ID + 1
		}
	}

	offset := baseOffset + len(b.notes)*cascade

	note := models.Note{
		ID:    id,
		Color: color,
		X:     offset,
		Y:     offset,
	}

	b.notes = append(b.notes, note)

	return note, b.save()
}

func (b *Board) find(id int64) (int, error) {
	i := slices.IndexFunc(b.notes, func(n models.Note) bool {
		return n.ID == id
	})
	if i < 0 {
		return i, errNoteNotFound.Fmt(id)
	}

	return i, nil
}

// Update replaces the content of a note.
func (b *Board) Update(id int64, content string) error {
	i, err := b.find(id)
	if err != nil {
		return err
	}

	b.notes[i].Content = content

	return b.save()
}

// Move places a note at x, y.
func (b *Board) Move(id int64, x, y int) error {
	i, err := b.find(id)
	if err != nil {
		return err
	}

	b.notes[i].X = x
	b.notes[i].Y = y

	return b.save()
}

// Delete removes a note.
func (b *Board) Delete(id int64) error {
	i, err := b.find(id)
	if err != nil {
		return err
	}

	b.notes = slices.Delete(b.notes, i, i+1)

	return b.save()
}

func (b *Board) save() error {
	notes := b.notes
	if notes == nil {
		notes = []models.Note{}
	}

	return store.SetJSON(b.db, store.KeyStickyNotes, notes)
}

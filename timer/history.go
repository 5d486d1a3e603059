package timer

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/ecofocus/internal/models"
	"github.com/ayoisaiah/ecofocus/store"
)

// Retention is how long history records are kept.
const Retention = 90 * 24 * time.Hour

// Prune returns the records completed no more than Retention before now.
func Prune(history []models.SessionRecord, now time.Time) []models.SessionRecord {
	cutoff := now.Add(-Retention).UnixMilli()

	pruned := make([]models.SessionRecord, 0, len(history))

	for _, rec := range history {
		if rec.Timestamp >= cutoff {
			pruned = append(pruned, rec)
		}
	}

	return pruned
}

// History returns the persisted session history. A missing or unreadable log
// yields an empty history.
func (t *Timer) History() []models.SessionRecord {
	return LoadHistory(t.db)
}

// LoadHistory reads the session history from db.
func LoadHistory(db store.DB) []models.SessionRecord {
	var history []models.SessionRecord

	err := store.JSON(db, store.KeySessionHistory, &history)
	if err != nil {
		slog.Warn("unable to read session history", slog.Any("error", err))
		return nil
	}

	return history
}

// ClearHistory deletes the session history. The session counter is kept.
func (t *Timer) ClearHistory() error {
	return DeleteHistory(t.db)
}

// DeleteHistory removes the session history from db.
func DeleteHistory(db store.DB) error {
	return db.Delete(store.KeySessionHistory)
}

func (t *Timer) appendHistory(at time.Time, minutes int) {
	history := append(t.History(), models.NewSessionRecord(at, minutes))

	history = Prune(history, at)

	err := store.SetJSON(t.db, store.KeySessionHistory, history)
	if err != nil {
		slog.Warn("unable to persist session history", slog.Any("error", err))
	}
}

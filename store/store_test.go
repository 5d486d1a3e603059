package store_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/ecofocus/internal/models"
	"github.com/ayoisaiah/ecofocus/store"
)

func backends(t *testing.T) map[string]store.DB {
	t.Helper()

	dir := t.TempDir()

	bolt, err := store.Open(store.BackendBolt, filepath.Join(dir, "ecofocus.db"))
	require.NoError(t, err)

	sqlite, err := store.Open(store.BackendSQLite, filepath.Join(dir, "ecofocus.sqlite"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = bolt.Close()
		_ = sqlite.Close()
	})

	return map[string]store.DB{
		"bolt":   bolt,
		"sqlite": sqlite,
		"memory": store.NewMemory(),
	}
}

func TestRoundTrip(t *testing.T) {
	for name, db := range backends(t) {
		t.Run(name, func(t *testing.T) {
			v, err := db.Get(store.KeyTheme)
			require.NoError(t, err)
			assert.Empty(t, v)

			require.NoError(t, db.Set(store.KeyTheme, "dark"))
			require.NoError(t, db.Set(store.KeyTheme, "light"))

			v, err = db.Get(store.KeyTheme)
			require.NoError(t, err)
			assert.Equal(t, "light", v)

			require.NoError(t, db.Delete(store.KeyTheme))
			require.NoError(t, db.Delete(store.KeyTheme))

			v, err = db.Get(store.KeyTheme)
			require.NoError(t, err)
			assert.Empty(t, v)
		})
	}
}

func TestScalarsAndJSON(t *testing.T) {
	for name, db := range backends(t) {
		t.Run(name, func(t *testing.T) {
			n, err := store.Int(db, store.KeyTotalSessions, 0)
			require.NoError(t, err)
			assert.Equal(t, 0, n)

			require.NoError(t, store.SetInt(db, store.KeyTotalSessions, 42))

			n, err = store.Int(db, store.KeyTotalSessions, 0)
			require.NoError(t, err)
			assert.Equal(t, 42, n)

			var history []models.SessionRecord

			require.NoError(t, store.JSON(db, store.KeySessionHistory, &history))
			assert.Empty(t, history)

			want := []models.SessionRecord{
				{Type: models.Work, Timestamp: 1700000000000, Duration: 25},
			}

			require.NoError(t, store.SetJSON(db, store.KeySessionHistory, want))
			require.NoError(t, store.JSON(db, store.KeySessionHistory, &history))
			assert.Equal(t, want, history)
		})
	}
}

func TestMalformedValues(t *testing.T) {
	db := store.NewMemory()

	require.NoError(t, db.Set(store.KeyWorkDuration, "abc"))

	n, err := store.Int(db, store.KeyWorkDuration, 25)
	assert.Error(t, err)
	assert.Equal(t, 25, n)

	require.NoError(t, db.Set(store.KeySessionHistory, "{not json"))

	var history []models.SessionRecord

	assert.Error(t, store.JSON(db, store.KeySessionHistory, &history))
	assert.Empty(t, history)
}

func TestMemoryFailWrites(t *testing.T) {
	db := store.NewMemory()
	db.FailWrites = true

	assert.ErrorIs(t, db.Set(store.KeyTheme, "dark"), store.ErrWriteFailed)

	v, _ := db.Get(store.KeyTheme)
	assert.Empty(t, v)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := store.Open("redis", filepath.Join(t.TempDir(), "x"))
	assert.Error(t, err)
}

func TestBoltSingleInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecofocus.db")

	db, err := store.Open(store.BackendBolt, path)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	// the file lock is held until the first handle is closed
	_, err = store.Open(store.BackendBolt, path)
	assert.ErrorContains(t, err, "already running")

	require.NoError(t, db.Close())

	db, err = store.Open(store.BackendBolt, path)
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}

func TestImport(t *testing.T) {
	db := store.NewMemory()

	dump := `{
		"totalSessions": "12",
		"theme": "light",
		"sessionHistory": "[{\"timestamp\":1700000000000,\"duration\":25,\"type\":\"work\"}]",
		"unrelated": "x"
	}`

	keys, err := store.Import(db, strings.NewReader(dump))
	require.NoError(t, err)
	assert.Equal(t, []string{"sessionHistory", "theme", "totalSessions"}, keys)

	n, err := store.Int(db, store.KeyTotalSessions, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	v, _ := db.Get("unrelated")
	assert.Empty(t, v)
}

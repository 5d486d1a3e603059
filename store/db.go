package store

// Keys under which widget state is persisted. Values are strings; structured
// values are JSON encoded.
const (
	KeyWorkDuration   = "workDuration"
	KeyBreakDuration  = "breakDuration"
	KeyTotalSessions  = "totalSessions"
	KeyGameHighScore  = "gameHighScore"
	KeySessionHistory = "sessionHistory"
	KeyTheme          = "theme"
	KeyStickyNotes    = "stickyNotes"
)

// Keys lists every key the widget persists.
var Keys = []string{
	KeyWorkDuration,
	KeyBreakDuration,
	KeyTotalSessions,
	KeyGameHighScore,
	KeySessionHistory,
	KeyTheme,
	KeyStickyNotes,
}

// DB is the key-value storage interface.
type DB interface {
	// Get returns the value stored under key, or an empty string if the key
	// is absent
	Get(key string) (string, error)
	// Set stores value under key, overwriting any previous value
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error
	Delete(key string) error
	// Close ends the database connection
	Close() error
}

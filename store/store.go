// Package store persists widget state in a durable key-value store
package store

import (
	"encoding/json"
	"strconv"

	"github.com/ayoisaiah/ecofocus/internal/apperr"
)

// Backend names accepted by Open.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

var (
	errAlreadyRunning = &apperr.Error{
		Message: "is ecofocus already running? Only one instance can be active at a time",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend: %s",
	}

	errDecodeValue = &apperr.Error{
		Message: "unable to decode value stored under %s",
	}
)

// Open connects to the database at path using the named backend.
func Open(backend, path string) (DB, error) {
	switch backend {
	case BackendBolt, "":
		return NewClient(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, errUnknownBackend.Fmt(backend)
	}
}

// Int reads an integer value. Absent or malformed values yield fallback.
func Int(db DB, key string, fallback int) (int, error) {
	s, err := db.Get(key)
	if err != nil {
		return fallback, err
	}

	if s == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback, errDecodeValue.Fmt(key).Wrap(err)
	}

	return n, nil
}

// SetInt stores an integer value.
func SetInt(db DB, key string, n int) error {
	return db.Set(key, strconv.Itoa(n))
}

// JSON decodes the value under key into v. An absent key leaves v untouched.
func JSON(db DB, key string, v any) error {
	s, err := db.Get(key)
	if err != nil {
		return err
	}

	if s == "" {
		return nil
	}

	err = json.Unmarshal([]byte(s), v)
	if err != nil {
		return errDecodeValue.Fmt(key).Wrap(err)
	}

	return nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(db DB, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return db.Set(key, string(b))
}

// Package models defines the records ecofocus persists
package models

import "time"

// SessionType is the kind of a completed session.
type SessionType string

// Work is the only session type that is recorded. Break completions are not
// logged.
const Work SessionType = "work"

// SessionRecord is an entry in the session history log. Timestamp is stored
// in Unix milliseconds so exported history stays compatible with data
// exported from the browser edition of the widget.
type SessionRecord struct {
	Type      SessionType `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Duration  int         `json:"duration"` // minutes
}

// NewSessionRecord returns a work record completed at t.
func NewSessionRecord(t time.Time, minutes int) SessionRecord {
	return SessionRecord{
		Type:      Work,
		Timestamp: t.UnixMilli(),
		Duration:  minutes,
	}
}

// Time returns the completion instant.
func (r SessionRecord) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// Note is a sticky note.
type Note struct {
	Content string `json:"content"`
	Color   string `json:"color"`
	ID      int64  `json:"id"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}

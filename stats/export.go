package stats

import (
	"encoding/json"
	"io"

	"github.com/ayoisaiah/ecofocus/internal/models"
)

// Export writes history as an indented JSON array. The shape matches the
// history export of the browser widget.
func Export(history []models.SessionRecord, w io.Writer) error {
	if history == nil {
		history = []models.SessionRecord{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(history)
}

// ToJSON writes s as indented JSON.
func ToJSON(s Stats, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}

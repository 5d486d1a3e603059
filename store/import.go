package store

import (
	"encoding/json"
	"io"
	"slices"
)

// Import copies a browser localStorage dump (a JSON object of string values)
// into db. Unknown keys are skipped. It returns the keys that were written.
func Import(db DB, r io.Reader) ([]string, error) {
	var dump map[string]string

	err := json.NewDecoder(r).Decode(&dump)
	if err != nil {
		return nil, err
	}

	var imported []string

	for _, key := range Keys {
		value, ok := dump[key]
		if !ok {
			continue
		}

		err = db.Set(key, value)
		if err != nil {
			return imported, err
		}

		imported = append(imported, key)
	}

	slices.Sort(imported)

	return imported, nil
}

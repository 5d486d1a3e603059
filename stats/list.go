package stats

import (
	"io"
	"strconv"
	"time"

	"github.com/ayoisaiah/ecofocus/internal/models"
	"github.com/ayoisaiah/ecofocus/internal/ui"
)

// List prints the recorded sessions as a table, most recent first.
func List(w io.Writer, history []models.SessionRecord, loc *time.Location) {
	data := [][]string{
		{"#", "COMPLETED", "DURATION"},
	}

	for i := len(history) - 1; i >= 0; i-- {
		rec := history[i]

		data = append(data, []string{
			strconv.Itoa(len(history) - i),
			rec.Time().In(loc).Format("Jan 02, 2006 03:04 PM"),
			formatMinutes(rec.Duration),
		})
	}

	ui.PrintTable(data, w)
}

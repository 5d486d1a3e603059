package dashboard

import (
	"strings"

	"github.com/ayoisaiah/ecofocus/arcade"
)

// Terminal cells covering the play field.
const (
	gridCols = 60
	gridRows = 20
)

const (
	emptyCell     = ' '
	playerCell    = '^'
	formationCell = 'W'
	divingCell    = 'V'
	shotCell      = '|'
)

// renderField draws a snapshot of the play field on a grid of cols x rows
// cells. Objects are drawn on the row holding their vertical centre and on
// every column they cover. Objects outside the field are clipped.
func renderField(s arcade.Snapshot, cols, rows int) string {
	grid := make([][]rune, rows)

	for i := range grid {
		grid[i] = []rune(strings.Repeat(string(emptyCell), cols))
	}

	cellW := float64(arcade.FieldWidth) / float64(cols)
	cellH := float64(arcade.FieldHeight) / float64(rows)

	plot := func(r arcade.Rect, ch rune) {
		row := int((r.Y + r.H/2) / cellH)
		if row < 0 || row >= rows {
			return
		}

		first := max(int(r.X/cellW), 0)
		last := min(int((r.X+r.W-1)/cellW), cols-1)

		for c := first; c <= last; c++ {
			grid[row][c] = ch
		}
	}

	for _, en := range s.Entities {
		ch := formationCell
		if en.Behaviour == arcade.Diving {
			ch = divingCell
		}

		plot(en.Rect, ch)
	}

	for _, p := range s.Projectiles {
		plot(p, shotCell)
	}

	plot(s.Player, playerCell)

	lines := make([]string, rows)

	for i, row := range grid {
		lines[i] = string(row)
	}

	return strings.Join(lines, "\n")
}

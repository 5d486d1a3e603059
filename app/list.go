package app

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/ecofocus/internal/config"
	"github.com/ayoisaiah/ecofocus/internal/models"
	"github.com/ayoisaiah/ecofocus/internal/notes"
	"github.com/ayoisaiah/ecofocus/internal/ui"
	"github.com/ayoisaiah/ecofocus/store"
)

const (
	noSessionsMsg = "No sessions recorded yet"
	noNotesMsg    = "No notes yet. Add one with 'ecofocus notes add <text>'"
)

// printNotesTable prints a table of notes to the command-line.
func printNotesTable(w io.Writer, list []models.Note) {
	tableBody := make([][]string, len(list))

	for i, n := range list {
		created := time.UnixMilli(n.ID).Format("Jan 02, 2006 03:04 PM")

		tableBody[i] = []string{
			fmt.Sprintf("%d", n.ID),
			created,
			n.Color,
			fmt.Sprintf("%d,%d", n.X, n.Y),
			ui.Highlight(n.Content),
		}
	}

	tableBody = append([][]string{
		{"ID", "CREATED", "COLOR", "POSITION", "CONTENT"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// notesListAction prints out all sticky notes.
func notesListAction(ctx *cli.Context) error {
	return withStore(ctx, func(db store.DB) error {
		list := notes.Load(db, nil).List()

		if ctx.Bool("json") {
			if list == nil {
				list = []models.Note{}
			}

			b, err := json.MarshalIndent(list, "", "  ")
			if err != nil {
				return err
			}

			fmt.Fprintln(config.Stdout, string(b))

			return nil
		}

		if len(list) == 0 {
			pterm.Info.Println(noNotesMsg)
			return nil
		}

		printNotesTable(config.Stdout, list)

		return nil
	})
}

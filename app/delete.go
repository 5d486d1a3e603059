package app

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/ecofocus/internal/notes"
	"github.com/ayoisaiah/ecofocus/internal/osutil"
	"github.com/ayoisaiah/ecofocus/store"
	"github.com/ayoisaiah/ecofocus/timer"
)

// confirm asks the user to approve a destructive operation.
var confirm = func(title string) (bool, error) {
	if !osutil.IsInteractive() {
		return false, errConfirmRequired
	}

	var ok bool

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes, delete").
		Negative("No").
		Value(&ok).
		Run()

	return ok, err
}

// resetStatsAction clears the session history. It requests for confirmation
// before proceeding unless --yes is set.
func resetStatsAction(ctx *cli.Context) error {
	return withStore(ctx, func(db store.DB) error {
		history := timer.LoadHistory(db)
		if len(history) == 0 {
			pterm.Info.Println(noSessionsMsg)
			return nil
		}

		if !ctx.Bool("yes") {
			ok, err := confirm(fmt.Sprintf(
				"%d recorded sessions will be deleted permanently. Proceed?",
				len(history),
			))
			if err != nil {
				return err
			}

			if !ok {
				return errResetCancelled
			}
		}

		if err := timer.DeleteHistory(db); err != nil {
			return err
		}

		pterm.Success.Println("Session history cleared")

		return nil
	})
}

// notesDeleteAction removes a sticky note.
func notesDeleteAction(ctx *cli.Context) error {
	if ctx.Args().Len() < 1 {
		return errMissingArgs.Fmt("ecofocus notes rm <id>")
	}

	id, err := parseNoteID(ctx.Args().First())
	if err != nil {
		return err
	}

	return withStore(ctx, func(db store.DB) error {
		return notes.Load(db, nil).Delete(id)
	})
}

package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/ecofocus/internal/config"
	"github.com/ayoisaiah/ecofocus/internal/notes"
	"github.com/ayoisaiah/ecofocus/store"
)

func parseNoteID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errInvalidNoteID.Fmt(s)
	}

	return id, nil
}

// notesAddAction pins a new note and prints its id.
func notesAddAction(ctx *cli.Context) error {
	content := strings.Join(ctx.Args().Slice(), " ")
	if content == "" {
		return errMissingArgs.Fmt("ecofocus notes add <text>")
	}

	return withStore(ctx, func(db store.DB) error {
		board := notes.Load(db, nil)

		n, err := board.Add(ctx.String("color"))
		if err != nil {
			return err
		}

		if err := board.Update(n.ID, content); err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, n.ID)

		return nil
	})
}

// notesEditAction replaces the text of a note.
func notesEditAction(ctx *cli.Context) error {
	if ctx.Args().Len() < 2 {
		return errMissingArgs.Fmt("ecofocus notes edit <id> <text>")
	}

	id, err := parseNoteID(ctx.Args().First())
	if err != nil {
		return err
	}

	content := strings.Join(ctx.Args().Tail(), " ")

	return withStore(ctx, func(db store.DB) error {
		return notes.Load(db, nil).Update(id, content)
	})
}

// notesMoveAction repositions a note on the browser canvas.
func notesMoveAction(ctx *cli.Context) error {
	args := ctx.Args()
	if args.Len() < 3 {
		return errMissingArgs.Fmt("ecofocus notes move <id> <x> <y>")
	}

	id, err := parseNoteID(args.Get(0))
	if err != nil {
		return err
	}

	x, err := strconv.Atoi(args.Get(1))
	if err != nil {
		return errInvalidPosition.Fmt(args.Get(1))
	}

	y, err := strconv.Atoi(args.Get(2))
	if err != nil {
		return errInvalidPosition.Fmt(args.Get(2))
	}

	return withStore(ctx, func(db store.DB) error {
		return notes.Load(db, nil).Move(id, x, y)
	})
}

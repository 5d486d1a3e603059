package app

import "github.com/ayoisaiah/ecofocus/internal/apperr"

var (
	errMissingArgs = &apperr.Error{
		Message: "missing arguments: usage is %s",
	}

	errInvalidNoteID = &apperr.Error{
		Message: "invalid note id: %s",
	}

	errInvalidPosition = &apperr.Error{
		Message: "invalid note position: %s",
	}

	errResetCancelled = &apperr.Error{
		Message: "reset cancelled",
	}

	errConfirmRequired = &apperr.Error{
		Message: "refusing to clear history without a terminal: pass --yes to confirm",
	}
)

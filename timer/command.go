package timer

import (
	"log/slog"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// runSessionCmd launches the specified command without waiting for it, so a
// slow command never stalls the countdown.
func runSessionCmd(sessionCmd string) error {
	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errParseSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	err = cmd.Start()
	if err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Warn("session command exited with error", slog.Any("error", err))
		}
	}()

	return nil
}

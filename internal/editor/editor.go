// Package editor launches the user's preferred text editor on the
// config document.
package editor

import (
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"
)

// Open runs the detected editor on path, wired to the current terminal,
// and blocks until it exits.
func Open(path string) error {
	cmd := exec.Command(Detect(), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "running editor")
	}
	return nil
}

// Detect returns the editor command to use. Fallback chain:
// $EDITOR, $VISUAL, nano, vi.
func Detect() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}

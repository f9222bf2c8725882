// Package main is the entry point for the runr CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tmajors/runr/cmd/runr/commands"
	runrerrors "github.com/tmajors/runr/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var exitErr *runrerrors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(runrerrors.ExitUser)
	}
}

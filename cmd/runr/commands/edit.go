package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmajors/runr/internal/backup"
	"github.com/tmajors/runr/internal/config"
	"github.com/tmajors/runr/internal/editor"
	"github.com/tmajors/runr/internal/errors"
	"github.com/tmajors/runr/internal/paths"
	"github.com/tmajors/runr/internal/store"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in your editor",
	Long: `Open the config file in $EDITOR (falling back to $VISUAL, nano, vi).
The current document is backed up first, and checked for structural
problems after the editor exits.`,
	Example: `  runr edit

See Also: runr validate, runr restore`,
	RunE: runEdit,
}

func runEdit(_ *cobra.Command, _ []string) error {
	return runEditWithWriter(os.Stdout)
}

func runEditWithWriter(w io.Writer) error {
	path := configPath()
	if path == "" {
		path = paths.ConfigFile()
	}

	id, err := backup.New(fsys).Create(path)
	if err != nil {
		return errors.NewSystemError(err, "check permissions on the backup directory")
	}
	if id != "" {
		slog.Debug("document backed up", "id", id)
	}

	fmt.Fprintf(w, "Editing %s\n", path)
	if err := editor.Open(path); err != nil {
		return errors.NewSystemError(err, "set $EDITOR to a working editor")
	}

	st := store.New(fsys)
	exists, err := st.Exists(path)
	if err != nil || !exists {
		return nil
	}
	data, err := st.Read(path)
	if err != nil {
		return errors.NewSystemError(err, "check access to "+path)
	}

	if errs := config.ValidateDocument(data); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(w, "problem: %v\n", e)
		}
		suggestion := "fix the file by hand or run 'runr restore'"
		return errors.NewUserError(
			fmt.Errorf("%d problem(s) in %s", len(errs), path), suggestion)
	}
	return nil
}

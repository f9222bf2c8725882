package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmajors/runr/internal/backup"
	"github.com/tmajors/runr/internal/errors"
	"github.com/tmajors/runr/internal/paths"
)

var restoreList bool

func init() {
	restoreCmd.Flags().BoolVar(&restoreList, "list", false,
		"list available backups instead of restoring")
	rootCmd.AddCommand(restoreCmd)
}

var restoreCmd = &cobra.Command{
	Use:   "restore [id]",
	Short: "Restore the config file from a backup",
	Long: `Restore the config file from a backup taken before a destructive
operation (init --force, edit). Without an ID the newest backup is
restored; --list shows what is available.`,
	Example: `  # Undo the last destructive change
  runr restore

  # See what can be restored
  runr restore --list

  # Restore a specific backup
  runr restore 20260830T101500

See Also: runr edit, runr init`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRestore,
}

func runRestore(_ *cobra.Command, args []string) error {
	return runRestoreWithWriter(os.Stdout, args)
}

func runRestoreWithWriter(w io.Writer, args []string) error {
	mgr := backup.New(fsys)

	if restoreList {
		ids, err := mgr.List()
		if err != nil {
			return errors.NewSystemError(err, "check access to the backup directory")
		}
		if len(ids) == 0 {
			fmt.Fprintln(w, "No backups found")
			return nil
		}
		for _, id := range ids {
			fmt.Fprintln(w, id)
		}
		return nil
	}

	var id string
	if len(args) == 1 {
		id = args[0]
	}

	path := configPath()
	if path == "" {
		path = paths.ConfigFile()
	}

	restored, err := mgr.Restore(id, path)
	if err != nil {
		return errors.NewUserError(err, "run 'runr restore --list' to see available backups")
	}

	slog.Info("backup restored", "id", restored, "path", path)
	fmt.Fprintf(w, "Restored %s from backup %s\n", path, restored)
	return nil
}

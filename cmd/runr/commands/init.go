package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmajors/runr/internal/backup"
	"github.com/tmajors/runr/internal/config"
	"github.com/tmajors/runr/internal/errors"
	"github.com/tmajors/runr/internal/store"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with seeded defaults",
	Long: `Create the command config file, seeded with cargo defaults for the
run, test, build and bench contexts. The script context starts empty.

Refuses to overwrite an existing file unless --force is given.`,
	Example: `  # Create the default config file
  runr init

  # Start over
  runr init --force

See Also: runr list, runr set`,
	RunE: runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	return runInitWithWriter(os.Stdout)
}

func runInitWithWriter(w io.Writer) error {
	st := store.New(fsys)

	path := configPath()
	cfg, err := config.Load(st, path)
	if err != nil {
		return errors.NewConfigError(err)
	}

	exists, err := st.Exists(cfg.Path())
	if err != nil {
		return errors.NewSystemError(err, "check access to "+cfg.Path())
	}
	if exists && !initForce {
		return errors.NewUserError(nil,
			"config file already exists at "+cfg.Path()+"; use --force to overwrite")
	}
	if exists {
		id, err := backup.New(fsys).Create(cfg.Path())
		if err != nil {
			return errors.NewSystemError(err, "check permissions on the backup directory")
		}
		slog.Debug("document backed up", "id", id)
	}

	// A forced init discards whatever was loaded and starts from seed.
	cfg.Registry = config.Seed()

	if err := saveConfig(cfg); err != nil {
		return err
	}

	slog.Debug("config initialized", "path", cfg.Path())
	fmt.Fprintf(w, "Initialized config at %s\n", cfg.Path())
	return nil
}

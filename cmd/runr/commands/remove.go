package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmajors/runr/internal/command"
	"github.com/tmajors/runr/internal/errors"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <context> <key>",
	Aliases: []string{"rm"},
	Short:   "Remove a command configuration",
	Long: `Remove the configuration at the given key. Removing the context's
default entry clears the default; with one remaining entry the context
still resolves, otherwise pick a new default afterwards.`,
	Example: `  # Remove an entry
  runr remove rust-test cargo-test-verbose

See Also: runr set, runr default`,
	Args: cobra.ExactArgs(2),
	RunE: runRemove,
}

func runRemove(_ *cobra.Command, args []string) error {
	return runRemoveWithWriter(os.Stdout, args)
}

func runRemoveWithWriter(w io.Writer, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := command.Context(args[0])
	key := args[1]

	// Surface a useful error instead of silently removing nothing.
	if _, err := cfg.Registry.Configs(ctx).Get(key); err != nil {
		return errors.NewUserError(err, "run 'runr list "+args[0]+"' to see available keys")
	}

	cfg.Registry.Remove(ctx, key)

	if err := saveConfig(cfg); err != nil {
		return err
	}

	slog.Info("entry removed", "context", ctx, "key", key)
	fmt.Fprintf(w, "Removed %s/%s\n", ctx, key)
	return nil
}

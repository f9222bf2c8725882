package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/tmajors/runr/internal/command"
	"github.com/tmajors/runr/internal/errors"
)

var defaultPick bool

func init() {
	defaultCmd.Flags().BoolVar(&defaultPick, "pick", false,
		"pick the default interactively")
	rootCmd.AddCommand(defaultCmd)
}

var defaultCmd = &cobra.Command{
	Use:   "default <context> [key]",
	Short: "Choose a context's default configuration",
	Long: `Mark one of a context's configurations as its default: the one
resolved when the context is queried without a key.

Without a key argument, --pick opens an interactive fuzzy selector over
the context's entries.`,
	Example: `  # Set explicitly
  runr default rust-test cargo-test-verbose

  # Pick interactively
  runr default rust-test --pick

See Also: runr list, runr show`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDefault,
}

func runDefault(_ *cobra.Command, args []string) error {
	return runDefaultWithWriter(os.Stdout, args)
}

func runDefaultWithWriter(w io.Writer, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := command.Context(args[0])

	var key string
	switch {
	case len(args) == 2:
		key = args[1]
	case defaultPick:
		key, err = pickKey(cfg.Registry.Configs(ctx).Keys())
		if err != nil {
			return err
		}
		if key == "" {
			// Selection aborted
			return nil
		}
	default:
		return errors.NewUserError(nil, "pass a key or use --pick")
	}

	if err := cfg.Registry.SetDefault(ctx, key); err != nil {
		return errors.NewUserError(err, "run 'runr list "+args[0]+"' to see available keys")
	}

	if err := saveConfig(cfg); err != nil {
		return err
	}

	slog.Info("default updated", "context", ctx, "key", key)
	fmt.Fprintf(w, "Default for %s is now %s\n", ctx, key)
	return nil
}

// pickKey runs the interactive selector over keys. Returns "" when the
// user aborts.
func pickKey(keys []string) (string, error) {
	if len(keys) == 0 {
		return "", errors.NewUserError(errors.ErrNoConfigForContext,
			"the context has no entries to pick from")
	}

	idx, err := fuzzyfinder.Find(keys, func(i int) string {
		return keys[i]
	})
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return "", nil
		}
		return "", errors.NewSystemError(err, "interactive selection failed")
	}
	return keys[idx], nil
}

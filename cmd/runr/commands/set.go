package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmajors/runr/internal/command"
	"github.com/tmajors/runr/internal/errors"
	"github.com/tmajors/runr/internal/registry"
)

var (
	setCommand  string
	setType     string
	setParams   string
	setEnv      []string
	setCwd      string
	setPre      string
	setMultiple bool
)

func init() {
	setCmd.Flags().StringVarP(&setCommand, "command", "c", "",
		"command string (required for new entries)")
	setCmd.Flags().StringVarP(&setType, "type", "t", "",
		"command type: cargo, shell, make, npm")
	setCmd.Flags().StringVarP(&setParams, "params", "p", "",
		"comma-separated parameters")
	setCmd.Flags().StringArrayVarP(&setEnv, "env", "e", nil,
		"environment entry KEY=VALUE (repeatable)")
	setCmd.Flags().StringVar(&setCwd, "cwd", "",
		"working directory for the command")
	setCmd.Flags().StringVar(&setPre, "pre-command", "",
		"config key of a sibling entry to run first")
	setCmd.Flags().BoolVar(&setMultiple, "allow-multiple", false,
		"allow concurrent instances of this command")
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <context> <key>",
	Short: "Create or update a command configuration",
	Long: `Create a command configuration under a context, or update fields of
an existing one. Creating registers the context on first use; updating
changes only the flags you pass and never touches the context's default
selection.

The pre-command must name another key in the same context; it runs
before this entry. Pass --pre-command "" to clear it.`,
	Example: `  # New entry (context registered on first use)
  runr set rust-test cargo-test --command test --type cargo

  # Add environment and parameters
  runr set rust-test cargo-test -e RUST_BACKTRACE=1 -p "--workspace"

  # Chain a build before the test entry
  runr set rust-test cargo-test --pre-command cargo-build

See Also: runr default, runr remove`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	return runSetWithWriter(os.Stdout, cmd, args)
}

func runSetWithWriter(w io.Writer, cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := command.Context(args[0])
	key := args[1]

	cc, cerr := cfg.Registry.StrictConfigs(ctx)
	exists := cerr == nil
	if exists {
		_, kerr := cc.Get(key)
		exists = kerr == nil
	}

	if exists {
		err = updateEntry(cc, key, cmd)
	} else {
		err = createEntry(cfg.Registry, ctx, key, cmd)
	}
	if err != nil {
		return err
	}

	if err := saveConfig(cfg); err != nil {
		return err
	}

	env, _ := parseEnv(setEnv)
	slog.Info("entry saved", "context", ctx, "key", key, "env", env)
	fmt.Fprintf(w, "Saved %s/%s\n", ctx, key)
	return nil
}

// createEntry builds a brand new entry; --command is required.
func createEntry(reg *registry.Registry, ctx command.Context, key string, cmd *cobra.Command) error {
	if setCommand == "" {
		return errors.NewUserError(errors.ErrInvalidCommand,
			"new entries need --command")
	}

	env, err := parseEnv(setEnv)
	if err != nil {
		return err
	}

	typ := command.DefaultType
	if setType != "" {
		typ = command.Type(setType)
		if !command.ValidType(typ) {
			return errors.NewUserError(nil, "unknown type "+setType)
		}
	}

	b := command.NewBuilder(setCommand, typ).
		Env(env).
		Params(splitParams(setParams)).
		WorkingDirectory(setCwd).
		AllowMultipleInstances(setMultiple)

	d, err := b.Build()
	if err != nil {
		return errors.NewUserError(err, "provide a non-empty command")
	}

	reg.Update(ctx, key, d)

	// Pre-commands reference sibling keys, so they are applied after
	// the entry exists in its Config.
	if cmd.Flags().Changed("pre-command") {
		if err := reg.Configs(ctx).SetPreCommand(key, setPre); err != nil {
			return errors.NewUserError(err, "the pre-command must name an existing key in the same context")
		}
	}

	return nil
}

// updateEntry applies only the flags that were passed.
func updateEntry(cc *registry.Config, key string, cmd *cobra.Command) error {
	apply := func(name string, fn func() error) error {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		return fn()
	}

	if err := apply("command", func() error {
		return cc.SetCommand(key, setCommand)
	}); err != nil {
		return errors.NewUserError(err, "provide a non-empty command")
	}

	if err := apply("type", func() error {
		typ := command.Type(setType)
		if !command.ValidType(typ) {
			return errors.NewUserError(nil, "unknown type "+setType)
		}
		return cc.SetType(key, typ)
	}); err != nil {
		return err
	}

	if err := apply("params", func() error {
		return cc.SetParams(key, splitParams(setParams))
	}); err != nil {
		return err
	}

	if err := apply("env", func() error {
		env, err := parseEnv(setEnv)
		if err != nil {
			return err
		}
		return cc.SetEnv(key, env)
	}); err != nil {
		return err
	}

	if err := apply("cwd", func() error {
		return cc.SetWorkingDirectory(key, setCwd)
	}); err != nil {
		return err
	}

	if err := apply("allow-multiple", func() error {
		return cc.SetAllowMultipleInstances(key, setMultiple)
	}); err != nil {
		return err
	}

	if err := apply("pre-command", func() error {
		return cc.SetPreCommand(key, setPre)
	}); err != nil {
		return errors.NewUserError(err, "the pre-command must name an existing key in the same context")
	}

	return nil
}

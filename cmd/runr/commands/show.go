package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmajors/runr/internal/command"
	"github.com/tmajors/runr/internal/errors"
	"github.com/tmajors/runr/internal/redact"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <context> [key]",
	Short: "Show one command configuration in full",
	Long: `Show every field of a command configuration. Without a key, the
context's default entry is shown. Secret-looking environment values are
masked.`,
	Example: `  # Show what "runr" would run for the test context
  runr show test

  # Show a specific entry
  runr show rust-test cargo-test-verbose

See Also: runr list, runr set`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runShow,
}

func runShow(_ *cobra.Command, args []string) error {
	return runShowWithWriter(os.Stdout, args)
}

func runShowWithWriter(w io.Writer, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := command.Context(args[0])

	var d *command.Details
	var key string
	if len(args) == 2 {
		key = args[1]
		d, err = cfg.Registry.Configs(ctx).Get(key)
		if err != nil {
			return errors.NewUserError(err, "run 'runr list "+args[0]+"' to see available keys")
		}
	} else {
		key = cfg.Registry.Configs(ctx).DefaultKey()
		d, err = cfg.Registry.DefaultDetails(ctx)
		if err != nil {
			return errors.NewUserError(err, "run 'runr default "+args[0]+" <key>' to choose a default")
		}
	}

	fmt.Fprintf(w, "Context:\t%s\n", ctx)
	if key != "" {
		fmt.Fprintf(w, "Key:\t\t%s\n", key)
	}
	fmt.Fprintf(w, "Command:\t%s\n", d.Command())
	fmt.Fprintf(w, "Type:\t\t%s\n", d.Type())
	if params := d.Params(); len(params) > 0 {
		fmt.Fprintf(w, "Params:\t\t%s\n", strings.Join(params, " "))
	}
	if pre := d.PreCommand(); pre != "" {
		fmt.Fprintf(w, "Pre-command:\t%s\n", pre)
	}
	if dir := d.WorkingDirectory(); dir != "" {
		fmt.Fprintf(w, "Working dir:\t%s\n", dir)
	}
	fmt.Fprintf(w, "Allow multiple:\t%v\n", d.AllowMultipleInstances())

	if env := d.Env(); len(env) > 0 {
		fmt.Fprintln(w, "Environment:")
		masked := redact.Env(env)
		for _, k := range sortedEnvKeys(masked) {
			fmt.Fprintf(w, "  %s=%s\n", k, masked[k])
		}
	}

	return nil
}

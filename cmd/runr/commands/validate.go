package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmajors/runr/internal/config"
	"github.com/tmajors/runr/internal/errors"
	"github.com/tmajors/runr/internal/paths"
	"github.com/tmajors/runr/internal/store"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config file for structural problems",
	Long: `Check the config file for anomalies that a load would silently
repair: entries without a command, unknown types, default keys or
pre-commands naming nothing. Useful after editing the file by hand.

Exits non-zero when problems are found.`,
	Example: `  runr validate

See Also: runr export`,
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, _ []string) error {
	return runValidateWithWriter(os.Stdout)
}

func runValidateWithWriter(w io.Writer) error {
	st := store.New(fsys)

	path := configPath()
	if path == "" {
		path = paths.ConfigFile()
	}

	exists, err := st.Exists(path)
	if err != nil {
		return errors.NewSystemError(err, "check access to "+path)
	}
	if !exists {
		fmt.Fprintf(w, "No config file at %s; nothing to validate\n", path)
		return nil
	}

	data, err := st.Read(path)
	if err != nil {
		return errors.NewSystemError(err, "check access to "+path)
	}

	errs := config.ValidateDocument(data)
	if len(errs) == 0 {
		fmt.Fprintf(w, "%s is valid\n", path)
		return nil
	}

	for _, e := range errs {
		fmt.Fprintf(w, "problem: %v\n", e)
	}
	return errors.NewUserError(
		fmt.Errorf("%d problem(s) in %s", len(errs), path),
		"fix the file by hand or re-run 'runr init --force'")
}

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmajors/runr/internal/errors"
	"github.com/tmajors/runr/internal/translate"
)

var exportFormat string

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "toml",
		"output format: toml, yaml")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current configuration to stdout",
	Long: `Serialize the full command registry to stdout, in TOML (the native
format) or YAML. The output is deterministic: exporting twice without
changes produces identical bytes.`,
	Example: `  # Native format
  runr export > backup.toml

  # YAML for other tooling
  runr export --format yaml

See Also: runr validate`,
	RunE: runExport,
}

func runExport(_ *cobra.Command, _ []string) error {
	return runExportWithWriter(os.Stdout)
}

func runExportWithWriter(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := cfg.Encode()
	if err != nil {
		return errors.NewSystemError(err, "the in-memory registry could not be serialized")
	}

	switch exportFormat {
	case "toml":
	case "yaml":
		data, err = translate.TOMLToYAML(data)
		if err != nil {
			return errors.NewSystemError(err, "conversion to YAML failed")
		}
	default:
		return errors.NewUserError(nil, "unknown format "+exportFormat+"; use toml or yaml")
	}

	_, err = fmt.Fprint(w, string(data))
	return err
}

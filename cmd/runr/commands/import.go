package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmajors/runr/internal/backup"
	"github.com/tmajors/runr/internal/config"
	"github.com/tmajors/runr/internal/errors"
	"github.com/tmajors/runr/internal/paths"
	"github.com/tmajors/runr/internal/store"
	"github.com/tmajors/runr/internal/translate"
)

var importFormat string

func init() {
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "",
		"input format: toml, yaml (default: by file extension)")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the configuration from an exported file",
	Long: `Read a previously exported document, in TOML or YAML, and replace
the current configuration with it. The format is taken from the file
extension unless --format says otherwise.

The current document is backed up first, and the imported one is
re-saved in canonical form. Repairable anomalies in the imported file
are reported as warnings; only unparseable input fails.`,
	Example: `  runr import backup.toml

  # From a YAML export
  runr import commands.yaml

See Also: runr export, runr restore`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(_ *cobra.Command, args []string) error {
	return runImportWithWriter(os.Stdout, args[0])
}

func runImportWithWriter(w io.Writer, file string) error {
	st := store.New(fsys)

	data, err := st.Read(file)
	if err != nil {
		return errors.NewSystemError(err, "check access to "+file)
	}

	format := importFormat
	if format == "" {
		switch strings.ToLower(filepath.Ext(file)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "toml"
		}
	}

	switch format {
	case "toml":
	case "yaml":
		data, err = translate.YAMLToTOML(data)
		if err != nil {
			return errors.NewUserError(err, file+" is not valid YAML")
		}
	default:
		return errors.NewUserError(nil, "unknown format "+format+"; use toml or yaml")
	}

	reg, warnings, err := config.Materialize(data)
	if err != nil {
		return errors.NewConfigError(err)
	}
	for _, warn := range warnings {
		fmt.Fprintf(w, "warning: %s.%s: %s\n", warn.Context, warn.Key, warn.Reason)
	}

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

	cfg := config.New(st, path)
	cfg.Registry = reg
	if err := saveConfig(cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "Imported %s into %s\n", file, path)
	return nil
}

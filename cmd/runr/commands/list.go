package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tmajors/runr/internal/command"
	"github.com/tmajors/runr/internal/registry"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [context]",
	Short: "List contexts and their command configurations",
	Long: `List every registered context with its configurations, or the
configurations of a single context. The default entry is marked with *.`,
	Example: `  # List everything
  runr list

  # List one context
  runr list rust-test

See Also: runr show, runr default`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(_ *cobra.Command, args []string) error {
	return runListWithWriter(os.Stdout, args)
}

func runListWithWriter(w io.Writer, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "CONTEXT\tKEY\tTYPE\tCOMMAND")

	contexts := cfg.Registry.Contexts()
	if len(args) == 1 {
		contexts = []command.Context{command.Context(args[0])}
	}

	for _, ctx := range contexts {
		listContext(tw, ctx, cfg.Registry.Configs(ctx))
	}

	return nil
}

func listContext(w io.Writer, ctx command.Context, cc *registry.Config) {
	if cc.Len() == 0 {
		fmt.Fprintf(w, "%s\t(empty)\t\t\n", ctx)
		return
	}
	for _, key := range cc.Keys() {
		d, err := cc.Get(key)
		if err != nil {
			continue
		}
		marker := ""
		if key == cc.DefaultKey() {
			marker = " *"
		}
		fmt.Fprintf(w, "%s\t%s%s\t%s\t%s\n",
			ctx, key, marker, d.Type(), truncate(d.Command(), 48))
	}
}

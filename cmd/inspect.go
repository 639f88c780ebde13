package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/selwatch/internal/output"
	"github.com/mj1618/selwatch/internal/platform"
	"github.com/mj1618/selwatch/internal/probe"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Run a single poll cycle immediately and print the result",
	Long: `Resolve the current element once, without the startup delay, and print
what watch would report. When nothing is focused or nothing matches, the
outcome is printed with matched: false and a reason.`,
	Example: `  selwatch inspect
  selwatch inspect --source pointer --format yaml`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	addConditionFlags(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	opts, err := conditionOptions()
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	defer provider.Close()

	res, err := probe.Inspect(cmd.Context(), provider, opts)
	if err != nil {
		return err
	}

	var v interface{} = res
	if output.OutputFormat == output.FormatText && res.Matched && !res.Snapshot.Empty() {
		v = *res.Snapshot
	}
	return output.Fprint(cmd.OutOrStdout(), output.OutputFormat, v)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/selwatch/internal/output"
	"github.com/mj1618/selwatch/internal/probe"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the named condition presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.Fprint(cmd.OutOrStdout(), output.OutputFormat, probe.DescribePresets())
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mj1618/selwatch/internal/output"
	"github.com/mj1618/selwatch/internal/platform"
	"github.com/mj1618/selwatch/internal/probe"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the selection and caret text until interrupted",
	Long: `Wait for the startup delay, then on every interval resolve the current
element, find the first element in its subtree matching the condition, and
print its selection ranges and caret text.

In text format each report is printed as:
  - <index> <text>     one line per selection range
  - Caret <text>       when the caret range is active

Cycles with no focused element or no match print nothing.`,
	Example: `  selwatch watch
  selwatch watch --source pointer --interval 500ms
  selwatch watch --preset editable-text --format json
  selwatch watch --require text-pattern2=true --require value-read-only=false`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addConditionFlags(watchCmd)
	watchCmd.Flags().Duration("interval", probe.DefaultInterval, "Time between polls")
	watchCmd.Flags().Duration("startup-delay", probe.DefaultStartupDelay, "Time to wait before the first poll")
	watchCmd.Flags().Duration("duration", 0, "Stop after this long (0 runs until interrupted)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts, err := conditionOptions()
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	defer provider.Close()

	cond, err := probe.BuildCondition(provider.Automation, opts.Predicates)
	if err != nil {
		return fmt.Errorf("build condition: %w", err)
	}
	defer cond.Release()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Watch.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Watch.Duration)
		defer cancel()
	}

	logger.Info("condition ready", "condition", probe.DescribePredicates(opts.Predicates))
	poller := &probe.Poller{
		Resolver:     probe.NewResolver(provider.Automation, provider.Pointer),
		Condition:    cond,
		Extractor:    probe.NewExtractor(opts.MaxChars),
		Reporter:     output.NewReporter(cmd.OutOrStdout(), output.OutputFormat),
		Source:       opts.Source,
		StartupDelay: cfg.Watch.StartupDelay,
		Interval:     cfg.Watch.Interval,
		Logger:       logger,
	}
	return poller.Run(ctx)
}

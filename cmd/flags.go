package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/selwatch/internal/probe"
)

// addConditionFlags registers the flags selecting source, condition and
// extraction bounds, shared by watch, inspect and serve.
func addConditionFlags(cmd *cobra.Command) {
	cmd.Flags().String("source", string(probe.SourceFocus), "Element source: focus or pointer")
	cmd.Flags().String("preset", probe.DefaultPreset, "Condition preset (see 'selwatch presets')")
	cmd.Flags().StringSlice("require", nil, "Property predicate name=bool, repeatable; replaces --preset")
	cmd.Flags().Int("max-chars", probe.DefaultMaxChars, "Maximum characters read per text range")
}

// conditionOptions turns the loaded config into inspection options.
func conditionOptions() (probe.InspectOptions, error) {
	src, err := probe.ParseSource(cfg.Watch.Source)
	if err != nil {
		return probe.InspectOptions{}, err
	}
	preds, err := cfg.Predicates()
	if err != nil {
		return probe.InspectOptions{}, err
	}
	return probe.InspectOptions{
		Source:     src,
		Predicates: preds,
		MaxChars:   cfg.Extract.MaxChars,
		Logger:     logger,
	}, nil
}

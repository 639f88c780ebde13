package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mj1618/selwatch/internal/output"
	"github.com/mj1618/selwatch/internal/platform"
	"github.com/mj1618/selwatch/internal/platform/fake"
)

// useFake installs auto as the platform provider for the duration of the test.
func useFake(t *testing.T, auto *fake.Automation) {
	t.Helper()
	prev := platform.NewProviderFunc
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return auto.Provider(), nil
	}
	t.Cleanup(func() { platform.NewProviderFunc = prev })
}

// executeCommand runs the root command with args against a clean viper and
// fresh flag state, returning stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	viper.Reset()
	resetFlags(rootCmd)
	output.OutputFormat = output.FormatText
	output.PrettyOutput = false
	t.Cleanup(viper.Reset)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func strPtr(s string) *string { return &s }

// editorWindow is a focused window holding one text-capable editor.
func editorWindow(text *fake.Text) *fake.Node {
	return &fake.Node{
		Name:        "window",
		ControlType: 50032,
		Children: []*fake.Node{
			{Name: "toolbar", ControlType: 50021},
			{
				Name:        "editor",
				ControlType: 50004,
				Props: map[platform.PropertyID]bool{
					platform.PropTextPattern2Available: true,
					platform.PropValuePatternAvailable: true,
				},
				Text: text,
			},
		},
	}
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mj1618/selwatch/internal/config"
	"github.com/mj1618/selwatch/internal/logging"
	"github.com/mj1618/selwatch/internal/output"
	"github.com/mj1618/selwatch/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "selwatch",
	Short: "Watch the text selection and caret of the focused UI element",
	Long: `selwatch polls the UI Automation tree, finds the first element under the
focused element (or the element under the mouse pointer) that satisfies a
capability condition, and prints its selected text ranges and caret text.

It only reads; the inspected controls are never modified.`,
}

// Loaded by the root PersistentPreRunE for every subcommand.
var (
	cfg    *config.Config
	logger = logging.NopLogger()

	// configErr is set by initConfig, which cannot return an error itself.
	configErr error
)

// flagKeys maps subcommand flag names to config keys. Flags are bound when
// the command runs so that commands sharing a flag name do not clash.
var flagKeys = map[string]string{
	"source":        "watch.source",
	"interval":      "watch.interval",
	"startup-delay": "watch.startup_delay",
	"duration":      "watch.duration",
	"preset":        "condition.preset",
	"require":       "condition.require",
	"max-chars":     "extract.max_chars",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/selwatch/config.yaml)")
	rootCmd.PersistentFlags().String("format", string(output.FormatText), "Output format: text, yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file instead of stderr")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := viper.BindPFlag(key, f); err != nil {
					return err
				}
			}
		}

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		// Flags parsed and config valid; later failures are runtime errors.
		cmd.SilenceUsage = true

		format, err := output.ParseFormat(cfg.Output.Format)
		if err != nil {
			return err
		}
		output.OutputFormat = format
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		if cfg.Logging.File != "" {
			logger, err = logging.NewFile(cfg.Logging.File, cfg.Logging.Level)
			if err != nil {
				return err
			}
		} else {
			logger = logging.New(cmd.ErrOrStderr(), cfg.Logging.Level)
		}
		logger = logger.With("cmd", cmd.Name())
		return nil
	}

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return logger.Close()
	}
}

func initConfig() {
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("output.format", flags.Lookup("format"))
	_ = viper.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("logging.file", flags.Lookup("log-file"))

	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	cfgFile := viper.GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	// SELWATCH_WATCH_INTERVAL for watch.interval
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		// Only a missing file on the search path is fine; an explicit
		// --config must exist and parse.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("read config: %w", err)
		}
	}
}

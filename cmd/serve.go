package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/selwatch/internal/platform"
	"github.com/mj1618/selwatch/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing selwatch tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes single-shot text
inspection as tools. The condition flags set the defaults for tool calls.

Tools:
  inspect_text   selection and caret text of the focused or pointed element
  list_presets   the named condition presets

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport

Examples:
  selwatch serve
  selwatch serve --transport streamable-http --port 8080
  selwatch serve --preset editable-text`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addConditionFlags(serveCmd)
	serveCmd.Flags().String("transport", server.TransportStdio, "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	opts, err := conditionOptions()
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	defer provider.Close()

	srv := server.New(provider, server.Config{
		Transport:  transport,
		Port:       port,
		Source:     opts.Source,
		Predicates: opts.Predicates,
		MaxChars:   opts.MaxChars,
		Logger:     logger,
	})
	if err := srv.Serve(); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

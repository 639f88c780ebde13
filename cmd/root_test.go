package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"watch", "inspect", "presets", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "format", "pretty", "log-level", "log-file"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag %q not found", name)
		}
	}
}

func TestRootCommand_RejectsBadFormat(t *testing.T) {
	_, _, err := executeCommand(t, "presets", "--format", "xml")
	if err == nil || !strings.Contains(err.Error(), "output.format") {
		t.Fatalf("expected output.format validation error, got %v", err)
	}
}

func TestRootCommand_RejectsBadLogLevel(t *testing.T) {
	_, _, err := executeCommand(t, "presets", "--log-level", "loud")
	if err == nil || !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("expected logging.level validation error, got %v", err)
	}
}

func TestRootCommand_EnvOverridesDefault(t *testing.T) {
	t.Setenv("SELWATCH_OUTPUT_FORMAT", "json")
	out, _, err := executeCommand(t, "presets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "[") {
		t.Errorf("expected JSON output from SELWATCH_OUTPUT_FORMAT, got:\n%s", out)
	}
}

func TestRootCommand_MissingExplicitConfig(t *testing.T) {
	_, _, err := executeCommand(t, "presets", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Fatalf("expected read config error, got %v", err)
	}
}

func TestRootCommand_MalformedExplicitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selwatch.yaml")
	if err := os.WriteFile(path, []byte("output: [json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, _, err := executeCommand(t, "presets", "--config", path)
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Fatalf("expected read config error, got %v", err)
	}
}

func TestRootCommand_ExplicitConfigApplies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selwatch.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, _, err := executeCommand(t, "presets", "--config", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "[") {
		t.Errorf("expected JSON output from config file, got:\n%s", out)
	}
}

func TestRootCommand_NoConfigFileIsFine(t *testing.T) {
	if _, _, err := executeCommand(t, "presets"); err != nil {
		t.Fatalf("missing default config file should not fail: %v", err)
	}
}

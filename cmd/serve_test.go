package cmd

import (
	"testing"

	"github.com/mj1618/selwatch/internal/platform/fake"
)

func TestServeCommand_Flags(t *testing.T) {
	flags := serveCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"transport", "string"},
		{"port", "int"},
		{"source", "string"},
		{"preset", "string"},
		{"require", "stringSlice"},
		{"max-chars", "int"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestServeCommand_RejectsUnknownTransport(t *testing.T) {
	useFake(t, &fake.Automation{})

	_, _, err := executeCommand(t, "serve", "--transport", "smoke-signals")
	if err == nil {
		t.Fatal("expected error for unknown transport")
	}
}

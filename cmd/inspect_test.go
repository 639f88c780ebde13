package cmd

import (
	"strings"
	"testing"

	"github.com/mj1618/selwatch/internal/platform"
	"github.com/mj1618/selwatch/internal/platform/fake"
)

func TestInspectCommand_IsRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "inspect" {
			return
		}
	}
	t.Error("inspect command not registered on root")
}

func TestInspectCommand_TextOutput(t *testing.T) {
	auto := &fake.Automation{Focused: editorWindow(&fake.Text{Selection: []string{"only"}})}
	useFake(t, auto)

	out, _, err := executeCommand(t, "inspect")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "- 0 only\n" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestInspectCommand_NoMatchPrintsReason(t *testing.T) {
	auto := &fake.Automation{Focused: &fake.Node{Name: "window"}}
	useFake(t, auto)

	out, _, err := executeCommand(t, "inspect")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"matched: false", "reason: no match", "condition: text-pattern2=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestInspectCommand_YAMLIncludesElement(t *testing.T) {
	auto := &fake.Automation{Focused: editorWindow(&fake.Text{Selection: []string{"abcdef"}})}
	useFake(t, auto)

	out, _, err := executeCommand(t, "inspect", "--format", "yaml", "--max-chars", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"matched: true", "r: input", `"n": editor`, "t: abc\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestInspectCommand_PointerSource(t *testing.T) {
	win := editorWindow(&fake.Text{Selection: []string{"under pointer"}})
	auto := &fake.Automation{
		Cursor: platform.Point{X: 10, Y: 20},
		AtPoint: func(pt platform.Point) *fake.Node {
			if pt == (platform.Point{X: 10, Y: 20}) {
				return win
			}
			return nil
		},
	}
	useFake(t, auto)

	out, _, err := executeCommand(t, "inspect", "--source", "pointer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "- 0 under pointer\n" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestInspectCommand_BadPredicate(t *testing.T) {
	useFake(t, &fake.Automation{})

	_, _, err := executeCommand(t, "inspect", "--require", "text-pattern2=perhaps")
	if err == nil || !strings.Contains(err.Error(), "condition.require") {
		t.Fatalf("expected condition.require validation error, got %v", err)
	}
}

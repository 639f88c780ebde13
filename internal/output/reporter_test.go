package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mj1618/selwatch/internal/model"
)

func TestReporter_TextStream(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatText)

	if err := r.Report(sampleSnapshot()); err != nil {
		t.Fatal(err)
	}
	if err := r.Report(model.Snapshot{Selection: []model.Range{{Index: 0, Text: "again"}}}); err != nil {
		t.Fatal(err)
	}

	want := "- 0 hello\n- 1 there\n- Caret world\n- 0 again\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}
}

func TestReporter_SkipsEmptySnapshots(t *testing.T) {
	for _, f := range []Format{FormatText, FormatYAML, FormatJSON} {
		var buf bytes.Buffer
		r := NewReporter(&buf, f)
		if err := r.Report(model.Snapshot{TS: 1, Source: "focus"}); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: empty snapshot produced output %q", f, buf.String())
		}
		if r.Count() != 0 {
			t.Errorf("%s: Count() = %d, want 0", f, r.Count())
		}
	}
}

func TestReporter_JSONLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatJSON)
	for i := 0; i < 3; i++ {
		if err := r.Report(sampleSnapshot()); err != nil {
			t.Fatal(err)
		}
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, line := range lines {
		var snap model.Snapshot
		if err := json.Unmarshal([]byte(line), &snap); err != nil {
			t.Errorf("invalid JSON line %q: %v", line, err)
		}
	}
}

func TestReporter_YAMLDocuments(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatYAML)
	_ = r.Report(sampleSnapshot())
	_ = r.Report(sampleSnapshot())

	if got := strings.Count(buf.String(), "---\n"); got != 1 {
		t.Errorf("expected 1 document separator, got %d in:\n%s", got, buf.String())
	}
}

func TestReporter_UnknownFormat(t *testing.T) {
	r := NewReporter(&bytes.Buffer{}, Format("xml"))
	if err := r.Report(sampleSnapshot()); err == nil {
		t.Error("expected error for unknown format")
	}
}

package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/mj1618/selwatch/internal/model"
)

// Reporter streams snapshots from the poll loop to w.
//
// Text format writes selection lines; YAML writes one document per snapshot;
// JSON writes one object per line. Snapshots with no selection and no caret
// are skipped so an idle watch stays silent in every format.
type Reporter struct {
	mu     sync.Mutex
	w      io.Writer
	format Format
	count  int
}

// NewReporter creates a Reporter writing to w in format.
func NewReporter(w io.Writer, format Format) *Reporter {
	return &Reporter{w: w, format: format}
}

// Report writes snap. It implements probe.Reporter.
func (r *Reporter) Report(snap model.Snapshot) error {
	if snap.Empty() {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.format {
	case FormatText, "":
		if err := WriteText(r.w, snap); err != nil {
			return err
		}
	case FormatYAML:
		if r.count > 0 {
			if _, err := io.WriteString(r.w, "---\n"); err != nil {
				return err
			}
		}
		if err := writeYAML(r.w, snap); err != nil {
			return err
		}
	case FormatJSON:
		// Always one line per snapshot so the stream stays JSONL.
		if err := writeJSON(r.w, snap, false); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format: %s", r.format)
	}
	r.count++
	return nil
}

// Count returns the number of snapshots written.
func (r *Reporter) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

package probe

import (
	"github.com/mj1618/selwatch/internal/model"
	"github.com/mj1618/selwatch/internal/platform"
	"github.com/mj1618/selwatch/internal/platform/fake"
)

func strPtr(s string) *string { return &s }

func props(kv ...interface{}) map[platform.PropertyID]bool {
	m := make(map[platform.PropertyID]bool, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(platform.PropertyID)] = kv[i+1].(bool)
	}
	return m
}

// textNode is an element exposing TextPattern2.
func textNode(name string, text *fake.Text) *fake.Node {
	return &fake.Node{
		Name:        name,
		ControlType: 50004,
		Props:       props(platform.PropTextPattern2Available, true),
		Text:        text,
	}
}

// windowWith wraps children in a focused pane without a text pattern.
func windowWith(children ...*fake.Node) *fake.Node {
	return &fake.Node{Name: "window", ControlType: 50032, Children: children}
}

type recordingReporter struct {
	snaps []model.Snapshot
	err   error
}

func (r *recordingReporter) Report(snap model.Snapshot) error {
	if r.err != nil {
		return r.err
	}
	r.snaps = append(r.snaps, snap)
	return nil
}

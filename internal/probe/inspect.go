package probe

import (
	"context"
	"fmt"

	"github.com/mj1618/selwatch/internal/logging"
	"github.com/mj1618/selwatch/internal/model"
	"github.com/mj1618/selwatch/internal/platform"
)

// Reasons reported by Inspect when nothing was extracted.
const (
	ReasonNoElement = "no element"
	ReasonNoMatch   = "no match"
)

// InspectOptions configures a single-shot cycle.
type InspectOptions struct {
	Source     Source
	Predicates []PropertyPredicate
	MaxChars   int
	Logger     *logging.Logger
}

// Inspection is the outcome of a single-shot cycle.
type Inspection struct {
	Source    Source          `yaml:"source"             json:"source"`
	Condition string          `yaml:"condition"          json:"condition"`
	Matched   bool            `yaml:"matched"            json:"matched"`
	Reason    string          `yaml:"reason,omitempty"   json:"reason,omitempty"`
	Snapshot  *model.Snapshot `yaml:"snapshot,omitempty" json:"snapshot,omitempty"`
}

// Inspect builds the condition, runs exactly one cycle without delays and
// releases the condition. Provider failures past resolution are returned as
// errors; a missing element or match is reported in the Inspection.
func Inspect(ctx context.Context, p *platform.Provider, opts InspectOptions) (Inspection, error) {
	res := Inspection{Source: opts.Source, Condition: DescribePredicates(opts.Predicates)}
	if p == nil || p.Automation == nil {
		return res, fmt.Errorf("inspect: %w", platform.ErrUnsupported)
	}

	cond, err := BuildCondition(p.Automation, opts.Predicates)
	if err != nil {
		return res, err
	}
	defer cond.Release()

	capture := &captureReporter{}
	poller := &Poller{
		Resolver:  NewResolver(p.Automation, p.Pointer),
		Condition: cond,
		Extractor: NewExtractor(opts.MaxChars),
		Reporter:  capture,
		Source:    opts.Source,
		Logger:    opts.Logger,
	}
	reported, err := poller.Step(ctx)
	if err != nil {
		return res, err
	}

	switch {
	case reported:
		res.Matched = true
		res.Snapshot = &capture.snap
	case poller.Stats().ResolveFailures > 0:
		res.Reason = ReasonNoElement
	default:
		res.Reason = ReasonNoMatch
	}
	return res, nil
}

type captureReporter struct {
	snap model.Snapshot
}

func (c *captureReporter) Report(snap model.Snapshot) error {
	c.snap = snap
	return nil
}

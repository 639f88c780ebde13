package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/mj1618/selwatch/internal/logging"
	"github.com/mj1618/selwatch/internal/model"
	"github.com/mj1618/selwatch/internal/platform"
)

// Default poll timing.
const (
	DefaultStartupDelay = 2 * time.Second
	DefaultInterval     = 200 * time.Millisecond
)

// Reporter receives the text extracted in a cycle.
type Reporter interface {
	Report(snap model.Snapshot) error
}

// Stats counts cycle outcomes over the life of a Poller.
type Stats struct {
	Cycles          int `yaml:"cycles"           json:"cycles"`
	ResolveFailures int `yaml:"resolve_failures" json:"resolve_failures"`
	NoMatch         int `yaml:"no_match"         json:"no_match"`
	Reports         int `yaml:"reports"          json:"reports"`
}

// Poller drives resolve → search → extract → report cycles on a fixed cadence.
// It is single-threaded: a cycle runs to completion before the next begins.
type Poller struct {
	Resolver  *Resolver
	Condition platform.Condition
	Extractor *Extractor
	Reporter  Reporter
	Source    Source

	// StartupDelay is waited once before the first cycle so the
	// foreground window can settle.
	StartupDelay time.Duration
	Interval     time.Duration

	Logger *logging.Logger

	stats Stats
}

// Stats returns the outcome counters so far.
func (p *Poller) Stats() Stats {
	return p.stats
}

// Run polls until ctx is done, returning nil, or until a cycle fails with a
// provider error, returning that error.
func (p *Poller) Run(ctx context.Context) error {
	log := p.logger()
	log.Info("watch started", "source", p.Source, "interval", p.Interval, "startup_delay", p.StartupDelay)

	if !wait(ctx, p.StartupDelay) {
		log.Info("watch stopped", "cycles", p.stats.Cycles, "reports", p.stats.Reports)
		return nil
	}
	for {
		if _, err := p.Step(ctx); err != nil {
			log.Error("watch aborted", "error", err, "cycles", p.stats.Cycles)
			return err
		}
		if !wait(ctx, p.Interval) {
			log.Info("watch stopped", "cycles", p.stats.Cycles, "reports", p.stats.Reports)
			return nil
		}
	}
}

// Step runs one cycle. reported is true when a snapshot was handed to the
// Reporter. Resolve failures and empty searches are not errors.
func (p *Poller) Step(ctx context.Context) (reported bool, err error) {
	if ctx.Err() != nil {
		return false, nil
	}
	p.stats.Cycles++
	log := p.logger()

	root, err := p.Resolver.Resolve(p.Source)
	if err != nil {
		// Nothing focused right now is the common case.
		p.stats.ResolveFailures++
		log.WithPhase("resolve").Debug("no element", "error", err)
		return false, nil
	}
	defer root.Release()

	match, found, err := FindFirst(root, p.Condition)
	if err != nil {
		return false, err
	}
	if !found {
		p.stats.NoMatch++
		log.WithPhase("search").Debug("no match")
		return false, nil
	}
	defer match.Release()

	snap, err := p.Extractor.Extract(match)
	if err != nil {
		return false, fmt.Errorf("extract text: %w", err)
	}
	snap.Source = string(p.Source)

	if err := p.Reporter.Report(snap); err != nil {
		return false, fmt.Errorf("report: %w", err)
	}
	p.stats.Reports++
	log.WithPhase("report").Debug("reported",
		"role", snap.Element.Role, "ranges", len(snap.Selection), "caret", snap.HasCaret())
	return true, nil
}

func (p *Poller) logger() *logging.Logger {
	if p.Logger == nil {
		return logging.NopLogger()
	}
	return p.Logger
}

// wait sleeps for d or until ctx is done; it reports whether to continue.
func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

package probe

import (
	"fmt"
	"time"

	"github.com/mj1618/selwatch/internal/model"
	"github.com/mj1618/selwatch/internal/platform"
)

// DefaultMaxChars bounds the text read from a single range.
const DefaultMaxChars = 1_000_000

// Extractor reads selection and caret text from a matched element.
type Extractor struct {
	// MaxChars is the maximum number of characters read per range.
	MaxChars int
}

// NewExtractor returns an Extractor; maxChars <= 0 selects DefaultMaxChars.
func NewExtractor(maxChars int) *Extractor {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &Extractor{MaxChars: maxChars}
}

// ExtractSelection returns the element's selection ranges in provider order.
func (x *Extractor) ExtractSelection(el platform.Element) ([]model.Range, error) {
	pat, err := textPattern(el)
	if err != nil {
		return nil, err
	}
	defer pat.Release()
	return x.selection(pat)
}

// ExtractCaret returns the caret text. ok is false unless the caret is
// active and the provider returned a range.
func (x *Extractor) ExtractCaret(el platform.Element) (text string, ok bool, err error) {
	pat, err := textPattern(el)
	if err != nil {
		return "", false, err
	}
	defer pat.Release()
	return x.caret(pat)
}

// Extract reads selection, caret and element description in one pass,
// acquiring the text pattern once.
func (x *Extractor) Extract(el platform.Element) (model.Snapshot, error) {
	snap := model.Snapshot{TS: time.Now().Unix()}

	// Descriptive only; a stale name or class is not worth aborting for.
	if info, err := el.Info(); err == nil {
		snap.Element = model.ElementFromInfo(info)
	}

	pat, err := textPattern(el)
	if err != nil {
		return snap, err
	}
	defer pat.Release()

	snap.Selection, err = x.selection(pat)
	if err != nil {
		return snap, err
	}
	text, ok, err := x.caret(pat)
	if err != nil {
		return snap, err
	}
	if ok {
		snap.Caret = &text
	}
	return snap, nil
}

// textPattern acquires TextPattern2. The element was matched on pattern
// availability, so failure here means the tree changed under us.
func textPattern(el platform.Element) (platform.TextPattern, error) {
	pat, err := el.TextPattern(platform.PatternText2)
	if err != nil {
		return nil, fmt.Errorf("acquire text pattern: %w", err)
	}
	return pat, nil
}

func (x *Extractor) selection(pat platform.TextPattern) ([]model.Range, error) {
	ranges, err := pat.Selection()
	if err != nil {
		return nil, fmt.Errorf("get selection: %w", err)
	}
	defer func() {
		for _, r := range ranges {
			r.Release()
		}
	}()

	out := make([]model.Range, 0, len(ranges))
	for i, r := range ranges {
		text, err := x.text(r)
		if err != nil {
			return nil, fmt.Errorf("selection range %d: %w", i, err)
		}
		out = append(out, model.Range{Index: i, Text: text})
	}
	return out, nil
}

func (x *Extractor) caret(pat platform.TextPattern) (string, bool, error) {
	active, r, err := pat.CaretRange()
	if err != nil {
		return "", false, fmt.Errorf("get caret range: %w", err)
	}
	if r == nil {
		return "", false, nil
	}
	defer r.Release()
	if !active {
		return "", false, nil
	}
	text, err := x.text(r)
	if err != nil {
		return "", false, fmt.Errorf("caret range: %w", err)
	}
	return text, true, nil
}

func (x *Extractor) text(r platform.TextRange) (string, error) {
	limit := x.limit()
	text, err := r.Text(limit)
	if err != nil {
		return "", fmt.Errorf("get text: %w", err)
	}
	// Clamp again in case the provider ignored maxLength.
	return model.Truncate(text, limit), nil
}

func (x *Extractor) limit() int {
	if x.MaxChars <= 0 {
		return DefaultMaxChars
	}
	return x.MaxChars
}
